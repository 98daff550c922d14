package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements store.TaskStore with a map guarded by a mutex.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[int64]*domain.Task
	lastID int64
	now    func() time.Time
}

var _ store.TaskStore = (*TaskStore)(nil)

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		s.now = now
	}
}

// NewTaskStore creates an empty TaskStore. The first task created gets ID 1.
func NewTaskStore(opts ...Option) *TaskStore {
	s := &TaskStore{
		tasks: make(map[int64]*domain.Task),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns copies of all tasks ordered by ID.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	tasks := make([]*domain.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, s.tasks[id].Clone())
	}
	return tasks, nil
}

// Create assigns the next ID and creation time to task and stores a copy.
// On success task itself carries the assigned fields; on failure neither
// task nor the ID counter changes.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := task.Clone()
	record.ID = s.lastID + 1
	record.CreatedAt = s.now()
	if err := record.Validate(); err != nil {
		return store.NewStoreError("task", "create", "invalid task",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.lastID = record.ID
	s.tasks[record.ID] = record
	task.ID = record.ID
	task.CreatedAt = record.CreatedAt

	logger.FromContext(ctx).Debug("task stored",
		"task_id", task.ID,
		"stored_count", len(s.tasks))

	return nil
}

// GetByID returns a copy of the task with the given ID.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// Delete removes the task with the given ID and returns it.
func (s *TaskStore) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return task, nil
}

// Count returns the number of stored tasks.
func (s *TaskStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
