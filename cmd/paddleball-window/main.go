package main

import (
	"fmt"
	"os"

	"github.com/diegok/paddleball/internal/config"
	"github.com/diegok/paddleball/internal/logging"
	"github.com/diegok/paddleball/internal/window"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: paddleball-window [--config file] [--seed n] [--width px] [--height px] [--max-vy speed] [--log file]")
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger, closer, err := logging.New(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := window.Run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
