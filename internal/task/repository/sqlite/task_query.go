package sqlite

import (
	"fmt"
	"strings"

	repo "voice-task-tracker/internal/task/repository"
)

var orderByClauses = map[string]string{
	"":                "created_at DESC",
	"created_at DESC": "created_at DESC",
	"created_at ASC":  "created_at ASC",
	"due_date ASC":    "due_date IS NULL, due_date ASC",
	"priority":        "CASE priority WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END, created_at DESC",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListFilter builds the WHERE clause + args for ListTasks.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, string(opt.Priority))
	}
	if opt.IsVoiceCreated != nil {
		conditions = append(conditions, "is_voice_created = ?")
		args = append(args, *opt.IsVoiceCreated)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildPagination builds the ORDER BY + LIMIT + OFFSET tail for ListTasks.
// Unknown orderings fall back to newest first.
func (r *implRepository) buildPagination(opt repo.ListTasksOptions) (string, []any) {
	var args []any

	orderBy, ok := orderByClauses[opt.OrderBy]
	if !ok {
		orderBy = orderByClauses[""]
	}
	parts := []string{fmt.Sprintf("ORDER BY %s", orderBy)}

	// SQLite requires LIMIT before OFFSET; -1 means no limit.
	if opt.Limit > 0 || opt.Offset > 0 {
		limit := opt.Limit
		if limit <= 0 {
			limit = -1
		}
		parts = append(parts, "LIMIT ?")
		args = append(args, limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// buildDueFilter builds the WHERE clause + args for ListDue.
func (r *implRepository) buildDueFilter(opt repo.ListDueOptions) (string, []any) {
	conditions := []string{"due_date IS NOT NULL", "due_date < ?"}
	args := []any{formatTime(opt.Before)}

	if opt.After != nil {
		conditions = append(conditions, "due_date >= ?")
		args = append(args, formatTime(*opt.After))
	}
	if opt.ExcludeStatus != "" {
		conditions = append(conditions, "status <> ?")
		args = append(args, string(opt.ExcludeStatus))
	}
	return strings.Join(conditions, " AND "), args
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
