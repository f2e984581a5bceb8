package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title must be at most 255 characters")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrEmptyQuery       = errors.New("search query is empty")
	ErrInvalidDays      = errors.New("days must be between 1 and 365")
)
