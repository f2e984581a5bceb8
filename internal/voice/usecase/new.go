package usecase

import (
	"time"

	"voice-task-tracker/internal/nlp"
	"voice-task-tracker/pkg/assemblyai"
	"voice-task-tracker/pkg/log"
)

type implUseCase struct {
	l           log.Logger
	transcriber assemblyai.ITranscriber
	parser      nlp.UseCase
	timeout     time.Duration
}

// New creates a new voice UseCase. A nil transcriber leaves Parse usable and
// makes the audio operations return voice.ErrTranscriptionDisabled.
// A zero timeout means the caller's context alone bounds transcription.
func New(l log.Logger, transcriber assemblyai.ITranscriber, parser nlp.UseCase, timeout time.Duration) *implUseCase {
	return &implUseCase{
		l:           l,
		transcriber: transcriber,
		parser:      parser,
		timeout:     timeout,
	}
}
