package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/task-api/internal/api"
	apiMiddleware "github.com/phrazzld/task-api/internal/api/middleware"
)

// route binds one method and path pattern to a handler.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// routes is the full HTTP surface of the service.
func (app *application) routes() []route {
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	systemHandler := api.NewSystemHandler(nil, app.logger)
	metricsHandler := app.metrics.Handler()

	return []route{
		{http.MethodGet, "/", systemHandler.Root},
		{http.MethodGet, "/health", systemHandler.Health},
		{http.MethodGet, "/tasks", taskHandler.ListTasks},
		{http.MethodPost, "/tasks", taskHandler.CreateTask},
		{http.MethodGet, "/tasks/{" + api.TaskIDParam + "}", taskHandler.GetTask},
		{http.MethodDelete, "/tasks/{" + api.TaskIDParam + "}", taskHandler.DeleteTask},
		{http.MethodGet, "/metrics", metricsHandler.ServeHTTP},
	}
}

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// The trace middleware wraps Recoverer so that panics are still counted
	// and logged as 500s.
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.metrics, app.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	for _, rt := range app.routes() {
		r.Method(rt.method, rt.pattern, rt.handler)
	}

	return r
}
