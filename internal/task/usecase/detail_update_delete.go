package usecase

import (
	"context"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	if input.Title == nil && input.Description == nil && input.Status == nil &&
		input.Priority == nil && input.DueDate == nil && !input.ClearDueDate {
		return model.Task{}, task.ErrNoFieldsToUpdate
	}

	existing, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	opt := updateOptions(existing, nil)
	if input.Title != nil {
		if opt.Title, err = validateTitle(*input.Title); err != nil {
			return model.Task{}, err
		}
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.Status != nil {
		if opt.Status, err = parseStatus(*input.Status, existing.Status); err != nil {
			return model.Task{}, err
		}
	}
	if input.Priority != nil {
		if opt.Priority, err = parsePriority(*input.Priority, existing.Priority); err != nil {
			return model.Task{}, err
		}
	}
	switch {
	case input.ClearDueDate:
		opt.DueDate = nil
	case input.DueDate != nil:
		opt.DueDate = input.DueDate
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Delete removes a task and its calendar reminder. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	uc.tryUnschedule(ctx, existing)
	return nil
}
