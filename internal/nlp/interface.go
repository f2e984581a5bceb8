package nlp

import "context"

// UseCase turns a free-form utterance into task attributes.
type UseCase interface {
	// ParseVoiceInput extracts title, priority, status and due date from a transcript.
	ParseVoiceInput(ctx context.Context, transcript string) (ParsedTask, error)
}

// PhraseResolver finds date/time references in free text.
// Candidates are ordered by relevance; callers use the first one.
type PhraseResolver interface {
	ResolvePhrases(ctx context.Context, text string) ([]TemporalCandidate, error)
}
