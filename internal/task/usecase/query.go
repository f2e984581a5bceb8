package usecase

import (
	"context"
	"strings"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	repo "voice-task-tracker/internal/task/repository"
)

const (
	defaultUpcomingDays = 7
	maxUpcomingDays     = 365
)

// Search returns tasks whose title, description or transcript contain query.
func (uc *implUseCase) Search(ctx context.Context, query string) ([]model.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, task.ErrEmptyQuery
	}

	tasks, err := uc.repo.SearchTasks(ctx, query)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search SearchTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Upcoming returns open tasks due from now until days days ahead.
// Zero days means the default window.
func (uc *implUseCase) Upcoming(ctx context.Context, days int) ([]model.Task, error) {
	if days == 0 {
		days = defaultUpcomingDays
	}
	if days < 0 || days > maxUpcomingDays {
		return nil, task.ErrInvalidDays
	}

	now := uc.now()
	tasks, err := uc.repo.ListDue(ctx, repo.ListDueOptions{
		After:         &now,
		Before:        now.AddDate(0, 0, days),
		ExcludeStatus: model.StatusDone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upcoming ListDue: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Overdue returns open tasks whose due date is in the past.
func (uc *implUseCase) Overdue(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.ListDue(ctx, repo.ListDueOptions{
		Before:        uc.now(),
		ExcludeStatus: model.StatusDone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overdue ListDue: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Stats counts tasks by status.
func (uc *implUseCase) Stats(ctx context.Context) (task.Stats, error) {
	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats CountByStatus: %v", err)
		return task.Stats{}, err
	}

	stats := task.Stats{
		ToDo:       counts[model.StatusToDo],
		InProgress: counts[model.StatusInProgress],
		Done:       counts[model.StatusDone],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}
