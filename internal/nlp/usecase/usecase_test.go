package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"voice-task-tracker/internal/nlp"
	pkgLog "voice-task-tracker/pkg/log"
)

type stubResolver struct {
	candidates []nlp.TemporalCandidate
	err        error
	panicWith  any
	calls      int
}

func (s *stubResolver) ResolvePhrases(ctx context.Context, text string) ([]nlp.TemporalCandidate, error) {
	s.calls++
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	return s.candidates, s.err
}

var errResolver = errors.New("resolver unavailable")

// recordingLogger keeps warnings and discards everything else.
type recordingLogger struct {
	pkgLog.Logger
	mu    sync.Mutex
	warns []string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Logger: pkgLog.NewNop()}
}

func (r *recordingLogger) Warnf(ctx context.Context, template string, arg ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(template, arg...))
}

func (r *recordingLogger) warnings() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.warns, "\n")
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}
