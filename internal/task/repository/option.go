package repository

import (
	"time"

	"voice-task-tracker/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	Title           string
	Description     string
	Status          model.Status
	Priority        model.Priority
	DueDate         *time.Time
	VoiceTranscript string
	IsVoiceCreated  bool
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
// All non-empty fields are applied as AND conditions.
type ListTasksOptions struct {
	Status         model.Status
	Priority       model.Priority
	IsVoiceCreated *bool
	Limit          int
	Offset         int
	OrderBy        string
}

// UpdateTaskOptions replaces the mutable columns of an existing task.
type UpdateTaskOptions struct {
	ID              string
	Title           string
	Description     string
	Status          model.Status
	Priority        model.Priority
	DueDate         *time.Time
	CalendarLink    string
	CalendarEventID string
}

// ListDueOptions bounds a due-date window. A nil After means unbounded.
type ListDueOptions struct {
	After         *time.Time
	Before        time.Time
	ExcludeStatus model.Status
}
