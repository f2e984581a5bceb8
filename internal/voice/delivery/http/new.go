package http

import (
	"voice-task-tracker/internal/voice"
	"voice-task-tracker/pkg/log"
)

// DefaultMaxUploadBytes matches the upstream transcription service's limit.
const DefaultMaxUploadBytes int64 = 25 << 20

type handler struct {
	l              log.Logger
	uc             voice.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the voice domain. A non-positive
// maxUploadBytes falls back to DefaultMaxUploadBytes.
func New(l log.Logger, uc voice.UseCase, maxUploadBytes int64) *handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
