package datemath

import "time"

// Phrase is a date and/or time reference found inside free text.
type Phrase struct {
	Text  string // matched source text
	Index int    // byte offset of Text in the input
	Time  time.Time

	// TimeExplicit reports whether the text named a clock time. When false,
	// Time sits at midnight of the resolved day.
	TimeExplicit bool
}

// match is a raw regexp hit before date and time hits are merged.
type match struct {
	start, end int
	text       string
	date       time.Time // zero for time-only hits
	hour, min  int
	hasClock   bool
	isDate     bool
}
