package assemblyai

import (
	"errors"
	"fmt"
)

var (
	ErrAPIKeyRequired      = errors.New("assemblyai API key is required")
	ErrEmptyAudio          = errors.New("audio is empty")
	ErrTranscriptionFailed = errors.New("transcription failed")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("assemblyai API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("assemblyai API error (%d): %s", e.StatusCode, e.Message)
}
