// Package main implements the entry point for the task API server, which
// keeps an in-memory collection of tasks and exposes it over HTTP together
// with health and Prometheus metrics endpoints.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		l.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		l.Error("Server exited with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"runtime_metrics", cfg.Metrics.IncludeRuntime)

	return cfg, l, nil
}
