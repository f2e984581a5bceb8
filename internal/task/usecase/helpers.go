package usecase

import (
	"strings"
	"unicode/utf8"

	"voice-task-tracker/internal/model"
	"voice-task-tracker/internal/task"
)

const maxTitleLength = 255

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", task.ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", task.ErrTitleTooLong
	}
	return title, nil
}

// parseStatus accepts canonical and display forms; empty yields def.
func parseStatus(s string, def model.Status) (model.Status, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	st, ok := model.ParseStatus(s)
	if !ok {
		return "", task.ErrInvalidStatus
	}
	return st, nil
}

// parsePriority accepts any casing; empty yields def.
func parsePriority(s string, def model.Priority) (model.Priority, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	p, ok := model.ParsePriority(s)
	if !ok {
		return "", task.ErrInvalidPriority
	}
	return p, nil
}
