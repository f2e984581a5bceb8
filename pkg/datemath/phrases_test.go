package datemath_test

import (
	"testing"
	"time"

	"voice-task-tracker/pkg/datemath"
)

func TestFindPhrases(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	// Wednesday, May 1, 2024 15:30
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, d, hh, mm int) time.Time {
		return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		text         string
		wantCount    int
		wantFirst    time.Time
		wantExplicit bool
		wantText     string
	}{
		{
			name:      "No temporal phrase",
			text:      "buy milk",
			wantCount: 0,
		},
		{
			name:      "Bare tomorrow",
			text:      "finish the report tomorrow",
			wantCount: 1,
			wantFirst: day(2024, 5, 2, 0, 0),
			wantText:  "tomorrow",
		},
		{
			name:         "Time only resolves to today",
			text:         "call the client, it's critical and due at 3:30 pm",
			wantCount:    1,
			wantFirst:    day(2024, 5, 1, 15, 30),
			wantExplicit: true,
			wantText:     "3:30 pm",
		},
		{
			name:         "Date followed by clock time merges",
			text:         "dentist tomorrow at 9am",
			wantCount:    1,
			wantFirst:    day(2024, 5, 2, 9, 0),
			wantExplicit: true,
			wantText:     "tomorrow at 9am",
		},
		{
			name:         "Clock time followed by date merges",
			text:         "standup at 10:15 on friday",
			wantCount:    1,
			wantFirst:    day(2024, 5, 3, 10, 15),
			wantExplicit: true,
			wantText:     "10:15 on friday",
		},
		{
			name:      "Next weekday skips today",
			text:      "retro next wednesday",
			wantCount: 1,
			wantFirst: day(2024, 5, 8, 0, 0),
		},
		{
			name:      "Bare weekday can be today",
			text:      "ship it wednesday",
			wantCount: 1,
			wantFirst: day(2024, 5, 1, 0, 0),
		},
		{
			name:      "In N days",
			text:      "renew passport in 3 days",
			wantCount: 1,
			wantFirst: day(2024, 5, 4, 0, 0),
		},
		{
			name:         "In N hours is explicit",
			text:         "check the oven in 2 hours",
			wantCount:    1,
			wantFirst:    day(2024, 5, 1, 17, 30),
			wantExplicit: true,
		},
		{
			name:      "Month name with day",
			text:      "taxes due by April 15th",
			wantCount: 1,
			wantFirst: day(2025, 4, 15, 0, 0),
		},
		{
			name:      "Month name with year",
			text:      "launch on June 3, 2024",
			wantCount: 1,
			wantFirst: day(2024, 6, 3, 0, 0),
		},
		{
			name:      "ISO date",
			text:      "deadline 2024-12-31",
			wantCount: 1,
			wantFirst: day(2024, 12, 31, 0, 0),
		},
		{
			name:      "Invalid calendar date is ignored",
			text:      "meet on 2/30",
			wantCount: 0,
		},
		{
			name:         "Noon",
			text:         "lunch tomorrow at noon",
			wantCount:    1,
			wantFirst:    day(2024, 5, 2, 12, 0),
			wantExplicit: true,
		},
		{
			name:      "Tonight",
			text:      "take out the trash tonight",
			wantCount: 1,
			wantFirst: day(2024, 5, 1, 0, 0),
		},
		{
			name:      "Multiple mentions are ordered by position",
			text:      "draft on friday then review next monday",
			wantCount: 2,
			wantFirst: day(2024, 5, 3, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.FindPhrases(tt.text, base)
			if len(got) != tt.wantCount {
				t.Fatalf("FindPhrases(%q) returned %d phrases, want %d: %+v", tt.text, len(got), tt.wantCount, got)
			}
			if tt.wantCount == 0 {
				return
			}
			first := got[0]
			if !first.Time.Equal(tt.wantFirst) {
				t.Errorf("first phrase time = %v, want %v", first.Time, tt.wantFirst)
			}
			if first.TimeExplicit != tt.wantExplicit {
				t.Errorf("first phrase TimeExplicit = %v, want %v", first.TimeExplicit, tt.wantExplicit)
			}
			if tt.wantText != "" && first.Text != tt.wantText {
				t.Errorf("first phrase text = %q, want %q", first.Text, tt.wantText)
			}
		})
	}
}

func TestFindPhrasesUsesParserLocation(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 20:00 UTC is already the next day in Ho Chi Minh City (UTC+7).
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	got := parser.FindPhrases("pay rent today", base)
	if len(got) != 1 {
		t.Fatalf("expected 1 phrase, got %d", len(got))
	}
	if got[0].Time.Day() != 2 || got[0].Time.Location() != parser.Location() {
		t.Errorf("expected May 2 in parser location, got %v", got[0].Time)
	}
}

func TestFindPhrasesRejectsOversizedOffsets(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	texts := []string{
		"ping me in 9999999999999 hours",
		"ping me in 9999999999999 minutes",
		"ping me in 99999999999999999999 hours",
		"renew the passport in 9999999999 months",
		"renew the passport in 9999999999 days",
	}
	for _, text := range texts {
		if got := parser.FindPhrases(text, base); len(got) != 0 {
			t.Errorf("FindPhrases(%q) = %v, want no phrases", text, got)
		}
	}

	got := parser.FindPhrases("ping me in 48 hours", base)
	if len(got) != 1 || !got[0].Time.Equal(base.Add(48*time.Hour)) {
		t.Errorf("FindPhrases(in 48 hours) = %v, want %v", got, base.Add(48*time.Hour))
	}
}
