package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"voice-task-tracker/internal/model"
	repo "voice-task-tracker/internal/task/repository"
)

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := `
		INSERT INTO tasks (id, title, description, status, priority, due_date, voice_transcript,
			is_voice_created, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + taskColumns

	now := formatTime(r.now())
	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Title, opt.Description, string(opt.Status), string(opt.Priority),
		formatDue(opt.DueDate), opt.VoiceTranscript, opt.IsVoiceCreated, now, now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask returns the task with the given ID, or a zero-value Task when not found.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? LIMIT 1`

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of tasks and the total number matching the filters.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	tail, pageArgs := r.buildPagination(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s %s", taskColumns, where, tail)
	rows, err := r.db.QueryContext(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask overwrites the mutable columns of a task. Returns a zero-value
// Task when the ID does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, priority = ?, due_date = ?,
			calendar_link = ?, calendar_event_id = ?, updated_at = ?
		WHERE id = ?
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, string(opt.Status), string(opt.Priority), formatDue(opt.DueDate),
		opt.CalendarLink, opt.CalendarEventID, formatTime(r.now()), opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// SearchTasks matches query as a case-insensitive substring of title,
// description or voice transcript. Newest first.
func (r *implRepository) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	stmt := `SELECT ` + taskColumns + ` FROM tasks
		WHERE title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR voice_transcript LIKE ? ESCAPE '\'
		ORDER BY created_at DESC`

	pattern := "%" + escapeLike(query) + "%"
	rows, err := r.db.QueryContext(ctx, stmt, pattern, pattern, pattern)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchTasks"), err)
		return nil, repo.ErrFailedToSearch
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("SearchTasks"), err)
		return nil, repo.ErrFailedToSearch
	}
	return tasks, nil
}

// ListDue returns tasks due inside the window, earliest first.
func (r *implRepository) ListDue(ctx context.Context, opt repo.ListDueOptions) ([]model.Task, error) {
	where, args := r.buildDueFilter(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY due_date ASC", taskColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDue"), err)
		return nil, repo.ErrFailedToList
	}
	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDue"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// CountByStatus returns the number of tasks per status. Statuses without
// tasks are absent from the map.
func (r *implRepository) CountByStatus(ctx context.Context) (map[model.Status]int, error) {
	const query = `SELECT status, COUNT(*) FROM tasks GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountByStatus"), err)
		return nil, repo.ErrFailedToCount
	}
	defer rows.Close()

	counts := make(map[model.Status]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CountByStatus"), err)
			return nil, repo.ErrFailedToCount
		}
		counts[model.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("CountByStatus"), err)
		return nil, repo.ErrFailedToCount
	}
	return counts, nil
}
