package api

import (
	"time"

	"github.com/phrazzld/task-api/internal/domain"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

// CreateTaskRequest defines the payload for POST /tasks.
// Fields are pointers so that a missing title can be told apart from an empty one.
type CreateTaskRequest struct {
	Title       *string `json:"title"       validate:"required,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskResponse is the JSON representation of a task.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`

	// CreatedAt is an RFC 3339 timestamp with nanosecond precision
	CreatedAt string `json:"created_at"`
}

// DeleteTaskResponse is returned by DELETE /tasks/{id}.
type DeleteTaskResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// EndpointsResponse lists the public endpoints advertised by GET /.
type EndpointsResponse struct {
	Health  string `json:"health"`
	Tasks   string `json:"tasks"`
	Metrics string `json:"metrics"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints EndpointsResponse `json:"endpoints"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   formatTimestamp(task.CreatedAt),
	}
}

// tasksToResponse converts tasks to responses, never returning nil so that
// an empty list encodes as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
