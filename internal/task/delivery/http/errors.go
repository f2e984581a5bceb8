package http

import (
	"errors"
	"net/http"

	"voice-task-tracker/internal/task"
	pkgErrors "voice-task-tracker/pkg/errors"
)

var (
	errIDRequired     = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDueDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date format for due_date")
	errInvalidBool    = pkgErrors.NewHTTPError(http.StatusBadRequest, "is_voice_created must be true or false")
)

// mapError translates task use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Title is required")
	case errors.Is(err, task.ErrTitleTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Title must be less than 255 characters")
	case errors.Is(err, task.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Status must be one of: To Do, In Progress, Done")
	case errors.Is(err, task.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Priority must be one of: Low, Medium, High, Critical")
	case errors.Is(err, task.ErrNoFieldsToUpdate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "At least one field is required for update")
	case errors.Is(err, task.ErrEmptyQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Search query is required")
	case errors.Is(err, task.ErrInvalidDays):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrInvalidDays.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
