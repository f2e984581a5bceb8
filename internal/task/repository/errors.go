package repository

import "errors"

// Storage failures. The driver error is logged by the implementation and not
// exposed to callers.
var (
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToGet    = errors.New("failed to get task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToSearch = errors.New("failed to search tasks")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrFailedToDelete = errors.New("failed to delete task")
	ErrFailedToCount  = errors.New("failed to count tasks")
)
