package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"voice-task-tracker/internal/model"
)

// Timestamps are stored as fixed-width UTC text so that string comparison
// orders them chronologically.
const timeLayout = "2006-01-02T15:04:05.000Z"

const taskColumns = `id, title, description, status, priority, due_date, voice_transcript,
	is_voice_created, calendar_link, calendar_event_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatDue(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func scanTask(s rowScanner) (model.Task, error) {
	var (
		t                model.Task
		status, priority string
		due              sql.NullString
		created, updated string
	)
	err := s.Scan(
		&t.ID, &t.Title, &t.Description, &status, &priority, &due, &t.VoiceTranscript,
		&t.IsVoiceCreated, &t.CalendarLink, &t.CalendarEventID, &created, &updated,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Status = model.Status(status)
	t.Priority = model.Priority(priority)
	if t.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return model.Task{}, fmt.Errorf("created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return model.Task{}, fmt.Errorf("updated_at: %w", err)
	}
	if due.Valid {
		d, err := time.Parse(timeLayout, due.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("due_date: %w", err)
		}
		t.DueDate = &d
	}
	return t, nil
}

func scanTasks(rows *sql.Rows) ([]model.Task, error) {
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
