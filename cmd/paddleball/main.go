package main

import (
	"fmt"
	"os"

	"github.com/diegok/paddleball/internal/app"
	"github.com/diegok/paddleball/internal/config"
	"github.com/diegok/paddleball/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger, closer, err := logging.New(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	application := app.NewApp(cfg, logger)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  paddleball [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --config <file>       TOML tuning file")
	fmt.Fprintln(os.Stderr, "  --seed <n>            Random seed for serves (default: clock)")
	fmt.Fprintln(os.Stderr, "  --max-vy <speed>      Limit the ball's vertical speed (default: none)")
	fmt.Fprintln(os.Stderr, "  --release-ticks <n>   Frames before a key counts as released (default: 30)")
	fmt.Fprintln(os.Stderr, "  --log <file>          Write logs to a file")
	fmt.Fprintln(os.Stderr, "  --log-level <level>   debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W/S        left paddle")
	fmt.Fprintln(os.Stderr, "  Up/Down    right paddle")
	fmt.Fprintln(os.Stderr, "  q, Esc     quit")
}
