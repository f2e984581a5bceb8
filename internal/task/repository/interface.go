package repository

import (
	"context"

	"voice-task-tracker/internal/model"
)

// Repository is the data access interface for tasks.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns a zero-value Task (ID == "") when nothing matches.
	GetOneTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	SearchTasks(ctx context.Context, query string) ([]model.Task, error)
	// ListDue returns tasks with a due date in [After, Before), excluding
	// ExcludeStatus, earliest first.
	ListDue(ctx context.Context, opt ListDueOptions) ([]model.Task, error)
	CountByStatus(ctx context.Context) (map[model.Status]int, error)
}
