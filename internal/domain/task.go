package domain

import (
	"errors"
	"fmt"
	"time"
)

// Common validation errors for Task
var (
	ErrEmptyTaskTitle = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrInvalidTaskID  = fmt.Errorf("%w: task ID must be positive", ErrValidation)
	ErrZeroCreatedAt  = fmt.Errorf("%w: task creation time must be set", ErrValidation)
)

// Task is a single to-do item. ID and CreatedAt are assigned by the store
// when the task is created and never change afterwards.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask creates an unsaved Task. The ID and creation time stay zero until
// the task is handed to a store.
// Returns an error if the title is empty.
func NewTask(title string, description *string, completed bool) (*Task, error) {
	task := &Task{
		Title:       title,
		Description: description,
		Completed:   completed,
	}

	if err := task.ValidateNew(); err != nil {
		return nil, err
	}

	return task, nil
}

// ValidateNew checks the caller-supplied fields of a task that has not been
// stored yet.
func (t *Task) ValidateNew() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	return nil
}

// Validate checks a stored task, including the fields assigned on creation.
func (t *Task) Validate() error {
	if err := t.ValidateNew(); err != nil {
		return err
	}
	if t.ID <= 0 {
		return ErrInvalidTaskID
	}
	if t.CreatedAt.IsZero() {
		return ErrZeroCreatedAt
	}
	return nil
}

// Clone returns a deep copy of the task so that callers cannot mutate a
// stored record through a shared pointer.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	return &c
}

// IsValidationError reports whether err came from task validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
