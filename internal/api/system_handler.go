package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
)

// SystemHandler serves the service description and health endpoints.
type SystemHandler struct {
	now    func() time.Time
	logger *slog.Logger
}

// NewSystemHandler creates a new SystemHandler. A nil clock uses time.Now.
func NewSystemHandler(now func() time.Time, logger *slog.Logger) *SystemHandler {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemHandler{
		now:    now,
		logger: logger.With(slog.String("component", "system_handler")),
	}
}

// Root handles GET / with a static description of the API.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message: "Welcome to Task Management API",
		Version: APIVersion,
		Endpoints: EndpointsResponse{
			Health:  "/health",
			Tasks:   "/tasks",
			Metrics: "/metrics",
		},
	})
}

// Health handles GET /health. It always reports healthy.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("health check")
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: formatTimestamp(h.now()),
	})
}
