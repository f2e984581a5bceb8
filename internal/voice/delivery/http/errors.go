package http

import (
	"errors"
	"net/http"

	"voice-task-tracker/internal/nlp"
	"voice-task-tracker/internal/voice"
	pkgErrors "voice-task-tracker/pkg/errors"
)

var (
	errTranscriptRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Transcript is required")
	errAudioTooLarge      = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Audio file is too large")
	errInvalidAudioType   = pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "Invalid file type. Only audio files are allowed.")
	errInvalidUpload      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid multipart upload")
)

// mapError translates voice and nlp errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrEmptyAudio):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No audio file uploaded")
	case errors.Is(err, nlp.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "Transcript is empty")
	case errors.Is(err, voice.ErrTranscriptionDisabled):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, voice.ErrTranscriptionDisabled.Error())
	case errors.Is(err, voice.ErrTranscriptionTimeout):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, voice.ErrTranscriptionTimeout.Error())
	case errors.Is(err, voice.ErrTranscriptionFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, voice.ErrTranscriptionFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
