package gcalendar

import "time"

const defaultReminderBefore = 10 * time.Minute

// CreateEventRequest is the input for creating a Google Calendar event.
// The event time zone is taken from StartTime's location.
type CreateEventRequest struct {
	CalendarID     string // defaults to "primary"
	Summary        string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	ReminderBefore time.Duration // defaults to 10 minutes
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
