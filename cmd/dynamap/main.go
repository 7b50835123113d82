package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/dynamap/internal/config"
	"github.com/gabapcia/dynamap/internal/handlers/cli"
	"github.com/gabapcia/dynamap/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		// The logger level comes from the configuration, so nothing can be logged yet.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmp, err := cfg.Comparer()
	if err != nil {
		logger.Fatal(ctx, "invalid key comparison", "comparison", cfg.Comparison, "error", err)
	}

	if err := cli.Run(ctx, cmp); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
