package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/metrics"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds all the shared application dependencies. It owns the
// task store for the lifetime of the process.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore   store.TaskStore
	taskService service.TaskService
	metrics     *metrics.HTTPMetrics
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewTaskStore()

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.metrics = metrics.NewHTTPMetrics(metrics.Options{
		IncludeRuntime: cfg.Metrics.IncludeRuntime,
	})

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
