package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/diegok/paddleball/internal/game"
)

// Default values for host settings
const (
	DefaultCellWidth    = 12.0
	DefaultCellHeight   = 24.0
	DefaultReleaseTicks = 30
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
	DefaultLogLevel     = "info"
)

// Physics holds the ball and paddle speeds
type Physics struct {
	PlayerSpeed         float64 `toml:"player_speed"`
	BallHorizontalSpeed float64 `toml:"ball_horizontal_speed"`
	SpeedTransferRate   float64 `toml:"speed_transfer_rate"`
	MaxVerticalSpeed    float64 `toml:"max_vertical_speed"` // 0 disables the limit
}

// Field holds body sizes and margins around the visible area
type Field struct {
	TopMargin    float64 `toml:"top_margin"`
	SideMargin   float64 `toml:"side_margin"`
	PaddleWidth  float64 `toml:"paddle_width"`
	PaddleHeight float64 `toml:"paddle_height"`
	PaddleX      float64 `toml:"paddle_x"`
}

// Terminal holds settings of the terminal host
type Terminal struct {
	CellWidth    float64 `toml:"cell_width"`
	CellHeight   float64 `toml:"cell_height"`
	ReleaseTicks int     `toml:"release_ticks"`
}

// Window holds settings of the window host
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config holds the application configuration
type Config struct {
	Physics  Physics  `toml:"physics"`
	Field    Field    `toml:"field"`
	Terminal Terminal `toml:"terminal"`
	Window   Window   `toml:"window"`

	Seed     int64  `toml:"seed"`
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`
}

// Default returns the stock configuration
func Default() *Config {
	p := game.DefaultParams()
	return &Config{
		Physics: Physics{
			PlayerSpeed:         p.PlayerSpeed,
			BallHorizontalSpeed: p.BallHorizontalSpeed,
			SpeedTransferRate:   p.SpeedTransferRate,
		},
		Field: Field{
			TopMargin:    p.TopMargin,
			SideMargin:   p.SideMargin,
			PaddleWidth:  p.PaddleWidth,
			PaddleHeight: p.PaddleHeight,
			PaddleX:      p.PaddleX,
		},
		Terminal: Terminal{
			CellWidth:    DefaultCellWidth,
			CellHeight:   DefaultCellHeight,
			ReleaseTicks: DefaultReleaseTicks,
		},
		Window: Window{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		LogLevel: DefaultLogLevel,
	}
}

// ParseArgs parses command line arguments and returns a Config.
// Values come from the defaults, then the --config file, then any flag that
// was set explicitly.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("paddleball", flag.ContinueOnError)

	file := fs.String("config", "", "TOML tuning file")
	seed := fs.Int64("seed", 0, "random seed for serves (0 = clock)")
	logFile := fs.String("log", "", "write logs to this file")
	logLevel := fs.String("log-level", DefaultLogLevel, "debug, info, warn or error")
	maxVY := fs.Float64("max-vy", 0, "limit on the ball's vertical speed (0 = none)")
	release := fs.Int("release-ticks", DefaultReleaseTicks, "frames without key repeat before a key counts as released")
	width := fs.Int("width", DefaultWindowWidth, "window width")
	height := fs.Int("height", DefaultWindowHeight, "window height")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()
	if *file != "" {
		if err := cfg.LoadFile(*file); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "log":
			cfg.LogFile = *logFile
		case "log-level":
			cfg.LogLevel = *logLevel
		case "max-vy":
			cfg.Physics.MaxVerticalSpeed = *maxVY
		case "release-ticks":
			cfg.Terminal.ReleaseTicks = *release
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays values from a TOML file. Keys that do not map to a
// setting are rejected.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"paddle_width", c.Field.PaddleWidth},
		{"paddle_height", c.Field.PaddleHeight},
		{"cell_width", c.Terminal.CellWidth},
		{"cell_height", c.Terminal.CellHeight},
	}
	for _, p := range positive {
		if !finite(p.v) || p.v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"player_speed", c.Physics.PlayerSpeed},
		{"ball_horizontal_speed", c.Physics.BallHorizontalSpeed},
		{"speed_transfer_rate", c.Physics.SpeedTransferRate},
		{"max_vertical_speed", c.Physics.MaxVerticalSpeed},
		{"top_margin", c.Field.TopMargin},
		{"side_margin", c.Field.SideMargin},
		{"paddle_x", c.Field.PaddleX},
	}
	for _, n := range nonNegative {
		if !finite(n.v) || n.v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", n.name, n.v)
		}
	}

	if c.Terminal.ReleaseTicks < 1 {
		return fmt.Errorf("release ticks must be at least 1, got %d", c.Terminal.ReleaseTicks)
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.New("log level must be one of debug, info, warn, error")
	}
	return level, nil
}

// Params converts the configuration to simulation parameters
func (c *Config) Params() game.Params {
	return game.Params{
		PlayerSpeed:         c.Physics.PlayerSpeed,
		BallHorizontalSpeed: c.Physics.BallHorizontalSpeed,
		SpeedTransferRate:   c.Physics.SpeedTransferRate,
		TopMargin:           c.Field.TopMargin,
		SideMargin:          c.Field.SideMargin,
		PaddleWidth:         c.Field.PaddleWidth,
		PaddleHeight:        c.Field.PaddleHeight,
		PaddleX:             c.Field.PaddleX,
	}
}

// SpeedLimiter returns the vertical speed hook for the simulation
func (c *Config) SpeedLimiter() game.SpeedLimiter {
	if c.Physics.MaxVerticalSpeed > 0 {
		return game.ClampSpeed(c.Physics.MaxVerticalSpeed)
	}
	return game.NoSpeedLimit
}

// NewState builds the simulation described by the configuration
func (c *Config) NewState() *game.State {
	s := game.NewState(c.Params(), game.NewRandSource(c.Seed))
	s.Limit = c.SpeedLimiter()
	return s
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
