package main

import (
	"context"
	"fmt"
	"log/slog"

	dirmetrics "pcdir/internal/directory/metrics"
	"pcdir/internal/directory/service"
	"pcdir/internal/directory/store"
	"pcdir/internal/platform/config"
	"pcdir/internal/platform/logger"
	"pcdir/internal/seeder"
)

// app bundles the wired-up directory for one CLI invocation. The directory
// lives in process memory only; each run starts from the seeded fleet.
type app struct {
	cfg       config.App
	logger    *slog.Logger
	directory *service.DirectoryService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel))
	directory := service.NewDirectoryService(
		store.NewInMemory(),
		service.WithLogger(log),
		service.WithMetrics(dirmetrics.New()),
	)

	if cfg.SeedFleet {
		if err := seeder.New(directory, log).SeedFleet(ctx); err != nil {
			return nil, err
		}
	}

	return &app{cfg: cfg, logger: log, directory: directory}, nil
}
