package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// CreateTaskParams carries the caller-supplied fields of a new task.
type CreateTaskParams struct {
	Title       string
	Description *string
	Completed   bool
}

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns every task in creation order
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask validates and stores a new task, returning it with its
	// assigned ID and creation time
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// GetTask retrieves a task by ID. Returns ErrTaskNotFound if absent.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// DeleteTask removes a task and returns it. Returns ErrTaskNotFound if absent.
	DeleteTask(ctx context.Context, id int64) (*domain.Task, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService backed by the given store.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{
			Operation: "new_task_service",
			Message:   "task store cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	s.log(ctx).Info("fetching all tasks", slog.Int("count", s.tasks.Count(ctx)))

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	task, err := domain.NewTask(params.Title, params.Description, params.Completed)
	if err != nil {
		return nil, NewTaskServiceError("create_task", "invalid task", err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, NewTaskServiceError("create_task", "failed to store task", err)
	}

	s.log(ctx).Info("created task",
		slog.Int64("task_id", task.ID),
		slog.String("title", task.Title))

	return task, nil
}

// GetTask implements TaskService.GetTask
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Warn("task not found", slog.Int64("task_id", id))
		}
		return nil, NewTaskServiceError("get_task", "failed to get task", err)
	}

	s.log(ctx).Info("fetched task", slog.Int64("task_id", id))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.Delete(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Warn("attempted to delete non-existent task", slog.Int64("task_id", id))
		}
		return nil, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.log(ctx).Info("deleted task",
		slog.Int64("task_id", id),
		slog.String("title", task.Title))

	return task, nil
}
