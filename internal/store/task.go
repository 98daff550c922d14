package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List returns every stored task ordered by ID, which is also the order
	// in which the tasks were created. Returns an empty slice when the store is empty.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create assigns the next ID and the creation time to task and stores it.
	// The ID is strictly greater than every ID assigned before, including IDs
	// of tasks that have since been deleted.
	// Returns ErrInvalidEntity wrapping the domain error if the task is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Delete removes a task and returns the removed record.
	// Returns ErrTaskNotFound, leaving the store untouched, if the task does not exist.
	Delete(ctx context.Context, id int64) (*domain.Task, error)

	// Count returns the number of stored tasks.
	Count(ctx context.Context) int
}
