package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	desc := "write the report"

	tests := []struct {
		name        string
		title       string
		description *string
		completed   bool
		wantErr     error
	}{
		{name: "title only", title: "A"},
		{name: "all fields", title: "Report", description: &desc, completed: true},
		{name: "empty title", title: "", wantErr: ErrEmptyTaskTitle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task, err := NewTask(tc.title, tc.description, tc.completed)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr))
				assert.True(t, IsValidationError(err))
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.title, task.Title)
			assert.Equal(t, tc.description, task.Description)
			assert.Equal(t, tc.completed, task.Completed)
			assert.Zero(t, task.ID, "ID is assigned by the store")
			assert.True(t, task.CreatedAt.IsZero(), "CreatedAt is assigned by the store")
		})
	}
}

func TestTaskValidate(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{name: "valid", task: Task{ID: 1, Title: "A", CreatedAt: now}},
		{name: "missing title", task: Task{ID: 1, CreatedAt: now}, wantErr: ErrEmptyTaskTitle},
		{name: "zero id", task: Task{Title: "A", CreatedAt: now}, wantErr: ErrInvalidTaskID},
		{name: "negative id", task: Task{ID: -3, Title: "A", CreatedAt: now}, wantErr: ErrInvalidTaskID},
		{name: "zero created_at", task: Task{ID: 1, Title: "A"}, wantErr: ErrZeroCreatedAt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTaskClone(t *testing.T) {
	desc := "original"
	task := &Task{ID: 1, Title: "A", Description: &desc, CreatedAt: time.Now().UTC()}

	clone := task.Clone()
	require.NotSame(t, task, clone)
	assert.Equal(t, task, clone)

	*clone.Description = "changed"
	clone.Title = "B"
	assert.Equal(t, "original", *task.Description, "clone must not share the description")
	assert.Equal(t, "A", task.Title)

	var nilTask *Task
	assert.Nil(t, nilTask.Clone())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("id", "has invalid format", ErrInvalidID)
	assert.Equal(t, "id has invalid format", err.Error())
	assert.ErrorIs(t, err, ErrInvalidID)

	generic := NewValidationError("title", "is required", nil)
	assert.ErrorIs(t, generic, ErrValidation)
}
