package usecase

import (
	"voice-task-tracker/internal/nlp"
	pkgLog "voice-task-tracker/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	resolver nlp.PhraseResolver
}

// New creates a new nlp UseCase. A nil resolver disables due date detection.
func New(l pkgLog.Logger, resolver nlp.PhraseResolver) *implUseCase {
	return &implUseCase{
		l:        l,
		resolver: resolver,
	}
}
