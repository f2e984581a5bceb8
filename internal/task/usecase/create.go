package usecase

import (
	"context"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
	repo "voice-task-tracker/internal/task/repository"
)

// Create validates and stores a new task, then schedules a calendar reminder
// when it has a due date.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return model.Task{}, err
	}
	status, err := parseStatus(input.Status, model.StatusToDo)
	if err != nil {
		return model.Task{}, err
	}
	priority, err := parsePriority(input.Priority, model.PriorityMedium)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:           title,
		Description:     input.Description,
		Status:          status,
		Priority:        priority,
		DueDate:         input.DueDate,
		VoiceTranscript: input.VoiceTranscript,
		IsVoiceCreated:  input.IsVoiceCreated,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}

	link, eventID := uc.trySchedule(ctx, t)
	if eventID == "" {
		return t, nil
	}

	withEvent, err := uc.repo.UpdateTask(ctx, updateOptions(t, func(o *repo.UpdateTaskOptions) {
		o.CalendarLink = link
		o.CalendarEventID = eventID
	}))
	if err != nil || withEvent.ID == "" {
		uc.l.Warnf(ctx, "uc.Create UpdateTask calendar link (non-fatal): %v", err)
		return t, nil
	}
	return withEvent, nil
}

// updateOptions copies t into UpdateTaskOptions and applies edit.
func updateOptions(t model.Task, edit func(o *repo.UpdateTaskOptions)) repo.UpdateTaskOptions {
	o := repo.UpdateTaskOptions{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		Priority:        t.Priority,
		DueDate:         t.DueDate,
		CalendarLink:    t.CalendarLink,
		CalendarEventID: t.CalendarEventID,
	}
	if edit != nil {
		edit(&o)
	}
	return o
}
