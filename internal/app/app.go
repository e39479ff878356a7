package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/paddleball/internal/config"
	"github.com/diegok/paddleball/internal/game"
	"github.com/diegok/paddleball/internal/ui"
)

// FrameInterval is the time between simulation frames (~60fps)
const FrameInterval = 16 * time.Millisecond

// App is the terminal host. It owns the simulation state and is the only
// code that mutates it.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	state    *game.State
	keys     *ui.KeyTracker
	frame    int

	quit     chan struct{}
	stopOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:   cfg,
		log:   logger,
		state: cfg.NewState(),
		keys:  ui.NewKeyTracker(cfg.Terminal.ReleaseTicks),
		quit:  make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and runs the game
// until a quit key or signal arrives.
func (a *App) Run() error {
	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.attach(screen)

	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	a.log.Info("game started",
		"seed", a.cfg.Seed,
		"release_ticks", a.cfg.Terminal.ReleaseTicks)
	a.log.Debug("params", "params", fmt.Sprintf("%+v", a.state.Params))

	err = a.mainLoop()
	a.cleanup()
	return err
}

// attach binds the app to a screen
func (a *App) attach(screen *ui.Screen) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen, ui.Scale{
		CellWidth:  a.cfg.Terminal.CellWidth,
		CellHeight: a.cfg.Terminal.CellHeight,
	})
}

// mainLoop is the main event loop that handles all input and frame updates.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.step()
		}
	}
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		// the field follows the new size on the next frame
		a.screen.Sync()
	}
	return false
}

// handleKey routes a key press. Returns true on a quit key.
func (a *App) handleKey(key tcell.Key, r rune) bool {
	if ui.IsQuitKey(key, r) {
		return true
	}
	if c, ok := ui.KeyToControl(key, r); ok {
		a.keys.Press(c, a.state)
	}
	return false
}

// step runs one frame: synthesized releases, the update, then rendering.
func (a *App) step() {
	a.frame++
	a.keys.Tick(a.state)

	field := a.renderer.Field()
	ev := a.state.Update(field)
	a.logEvents(ev)

	a.renderer.RenderGame(a.state, field)
}

func (a *App) logEvents(ev game.Events) {
	if ev.Has(game.EventPaddleHit) {
		a.log.Debug("paddle hit", "frame", a.frame, "ball_vel_y", a.state.Ball.Vel.Y)
	}
	if ev.Has(game.EventWallBounce) {
		a.log.Debug("wall bounce", "frame", a.frame)
	}
	if ev.Has(game.EventGoalP1) {
		a.log.Info("goal", "scorer", 1, "p1", a.state.P1Score, "p2", a.state.P2Score)
	}
	if ev.Has(game.EventGoalP2) {
		a.log.Info("goal", "scorer", 2, "p1", a.state.P1Score, "p2", a.state.P2Score)
	}
}

// stop ends the main loop; safe to call more than once
func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.stop()
	if a.screen != nil {
		a.screen.Fini()
	}
	signal.Stop(a.sigChan)

	a.log.Info("game ended", "frames", a.frame, "p1", a.state.P1Score, "p2", a.state.P2Score)
}
