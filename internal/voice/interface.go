package voice

import (
	"context"

	"voice-task-tracker/internal/nlp"
)

// UseCase turns recorded speech into task attributes.
type UseCase interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
	TranscribeAndParse(ctx context.Context, audio []byte) (TranscribeParseOutput, error)
	Parse(ctx context.Context, transcript string) (nlp.ParsedTask, error)
}
