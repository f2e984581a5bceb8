package usecase

import (
	"context"
	"time"

	"voice-task-tracker/internal/task/repository"
	"voice-task-tracker/pkg/gcalendar"
	"voice-task-tracker/pkg/log"
)

// Calendar schedules reminders for tasks that have a due date.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	calendar   Calendar
	calendarID string
	now        func() time.Time
}

// New creates a new task UseCase. calendar may be nil to disable reminders.
func New(l log.Logger, repo repository.Repository, calendar Calendar, calendarID string) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}
