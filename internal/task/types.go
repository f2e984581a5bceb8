package task

import (
	"time"

	"voice-task-tracker/internal/model"
)

// CreateInput is the input for creating a task. Status and Priority accept
// display forms ("In Progress") and default to to_do and medium.
type CreateInput struct {
	Title           string
	Description     string
	Status          string
	Priority        string
	DueDate         *time.Time
	VoiceTranscript string
	IsVoiceCreated  bool
}

// ListInput filters and paginates task listings. Empty fields are ignored.
type ListInput struct {
	Status         string
	Priority       string
	IsVoiceCreated *bool
	Limit          int
	Offset         int
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// UpdateInput is a partial update; nil fields keep their stored value.
type UpdateInput struct {
	ID           string
	Title        *string
	Description  *string
	Status       *string
	Priority     *string
	DueDate      *time.Time
	ClearDueDate bool
}

// Stats counts tasks per workflow status.
type Stats struct {
	Total      int
	ToDo       int
	InProgress int
	Done       int
}
