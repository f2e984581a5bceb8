package phrase

import (
	"context"
	"time"

	"voice-task-tracker/internal/nlp"
	"voice-task-tracker/pkg/datemath"
)

// Resolver adapts datemath.Parser to nlp.PhraseResolver.
type Resolver struct {
	parser *datemath.Parser
	now    func() time.Time
}

// New creates a Resolver. A nil now uses time.Now.
func New(parser *datemath.Parser, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{parser: parser, now: now}
}

// ResolvePhrases returns the date/time references in text in reading order.
func (r *Resolver) ResolvePhrases(ctx context.Context, text string) ([]nlp.TemporalCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	phrases := r.parser.FindPhrases(text, r.now())
	candidates := make([]nlp.TemporalCandidate, 0, len(phrases))
	for _, p := range phrases {
		candidates = append(candidates, nlp.TemporalCandidate{
			Text:         p.Text,
			Time:         p.Time,
			TimeExplicit: p.TimeExplicit,
		})
	}
	return candidates, nil
}
