package nlp

import (
	"time"

	"voice-task-tracker/internal/model"
)

// ParsedTask is the structured result of parsing one utterance.
type ParsedTask struct {
	Title           string         `json:"title"`
	Priority        model.Priority `json:"priority"`
	Status          model.Status   `json:"status"`
	DueDate         *time.Time     `json:"due_date"`
	VoiceTranscript string         `json:"voice_transcript"`
	IsVoiceCreated  bool           `json:"is_voice_created"`
}

// TemporalCandidate is one date/time reference reported by a PhraseResolver.
type TemporalCandidate struct {
	Text         string    // matched source text
	Time         time.Time // resolved instant; midnight when TimeExplicit is false
	TimeExplicit bool      // a clock time was present in the text
}
