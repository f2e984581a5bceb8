package usecase

import (
	"context"
	"strings"
	"time"
)

// resolveDueDate returns the due instant named by the utterance, or nil.
// Resolver failures are logged and treated as "no due date".
func (uc *implUseCase) resolveDueDate(ctx context.Context, text string) (due *time.Time) {
	if uc.resolver == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Warnf(ctx, "nlp.resolveDueDate: temporal resolution failure: %v", r)
			due = nil
		}
	}()

	candidates, err := uc.resolver.ResolvePhrases(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "nlp.resolveDueDate: temporal resolution failure: %v", err)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	c := candidates[0]
	t := atClock(c.Time, c.Time.Hour(), c.Time.Minute())

	lower := strings.ToLower(text)
	for _, dp := range dayParts {
		if strings.Contains(lower, dp.word) {
			t = atClock(t, dp.hour, dp.minute)
			return &t
		}
	}

	if !c.TimeExplicit {
		t = atClock(t, defaultDueHour, defaultDueMinute)
	}
	return &t
}

// atClock keeps the calendar day and location of t and sets the time of day.
func atClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
