package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/pkg/gcalendar"
)

const reminderDuration = 30 * time.Minute

// trySchedule creates a calendar event for t and returns its link and ID.
// Failures are logged and yield empty strings.
func (uc *implUseCase) trySchedule(ctx context.Context, t model.Task) (link, eventID string) {
	if uc.calendar == nil || t.DueDate == nil {
		return "", ""
	}

	description := fmt.Sprintf("Priority: %s\nStatus: %s", t.Priority, t.Status)
	if t.Description != "" {
		description = t.Description + "\n\n" + description
	}
	if t.VoiceTranscript != "" {
		description += fmt.Sprintf("\n\nTranscript: %q", t.VoiceTranscript)
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: strings.TrimSpace(description),
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(reminderDuration),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar event for %q (non-fatal): %v", t.Title, err)
		return "", ""
	}
	return event.HtmlLink, event.ID
}

// tryUnschedule removes the calendar event attached to t, if any.
func (uc *implUseCase) tryUnschedule(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.CalendarEventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, t.CalendarEventID); err != nil {
		uc.l.Warnf(ctx, "uc.Delete calendar event %s (non-fatal): %v", t.CalendarEventID, err)
	}
}
