package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/matchtag/internal/simulator"
	"github.com/okian/matchtag/pkg/logger"
)

func main() {
	cfg, err := simulator.ParseArgs(os.Args[1:])
	if errors.Is(err, simulator.ErrHelp) {
		return
	}
	if err != nil {
		// go-flags already printed parse errors.
		if errors.Is(err, simulator.ErrInvalidConfig) {
			os.Stderr.WriteString(err.Error() + "\n")
		}
		os.Exit(2)
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if cfg.Verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := simulator.Run(ctx, cfg); err != nil {
		logger.Named("match-sim").Error(ctx, "simulation failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}
