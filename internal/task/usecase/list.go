package usecase

import (
	"context"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	repo "voice-task-tracker/internal/task/repository"
)

// List returns a filtered, paginated list of tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	status, err := parseStatus(input.Status, "")
	if err != nil {
		return task.ListOutput{}, err
	}
	priority, err := parsePriority(input.Priority, "")
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status:         status,
		Priority:       priority,
		IsVoiceCreated: input.IsVoiceCreated,
		Limit:          input.Limit,
		Offset:         input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// ByPriority returns every task with the given priority, newest first.
func (uc *implUseCase) ByPriority(ctx context.Context, priority string) ([]model.Task, error) {
	p, ok := model.ParsePriority(priority)
	if !ok {
		return nil, task.ErrInvalidPriority
	}

	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Priority: p})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ByPriority ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}
