package task

import (
	"context"

	"voice-task-tracker/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id string) error

	// Search matches the query against title, description and transcript.
	Search(ctx context.Context, query string) ([]model.Task, error)
	// Upcoming returns open tasks due within the next days days.
	Upcoming(ctx context.Context, days int) ([]model.Task, error)
	// Overdue returns open tasks whose due date has passed.
	Overdue(ctx context.Context) ([]model.Task, error)
	Stats(ctx context.Context) (Stats, error)
	ByPriority(ctx context.Context, priority string) ([]model.Task, error)
}
