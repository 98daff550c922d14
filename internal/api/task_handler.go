package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
)

// TaskIDParam is the route parameter holding the task ID.
const TaskIDParam = "id"

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
// It returns every task as a JSON array.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /tasks requests.
// It validates the body and returns the stored task with 201 Created.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, DecodeErrorDetails(err))
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Debug("validation error", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, ValidationErrorDetails(err))
		return
	}

	params := service.CreateTaskParams{
		Title:       *req.Title,
		Description: req.Description,
	}
	if req.Completed != nil {
		params.Completed = *req.Completed
	}

	task, err := h.taskService.CreateTask(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	if _, err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message: "Task deleted successfully",
		ID:      id,
	})
}

// pathTaskID parses the task ID route parameter, writing a 422 and returning
// false when it is not an integer.
func (h *TaskHandler) pathTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathTaskID(r, TaskIDParam)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("invalid task ID", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, pathIDValidationDetails(TaskIDParam))
		return 0, false
	}
	return id, true
}
