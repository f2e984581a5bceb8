package usecase

import (
	"regexp"
	"strings"

	"voice-task-tracker/internal/model"
)

// keywordRule maps a whole-word keyword set to a classification value.
type keywordRule[T any] struct {
	re    *regexp.Regexp
	value T
}

// patternRule replaces every match of re with replacement.
type patternRule struct {
	re          *regexp.Regexp
	replacement string
}

type dayPart struct {
	word   string
	hour   int
	minute int
}

// keywords compiles a case-insensitive whole-word alternation. Multi-word
// phrases tolerate any run of whitespace between words.
func keywords(words ...string) *regexp.Regexp {
	alts := make([]string, len(words))
	for i, w := range words {
		parts := strings.Fields(w)
		for j, p := range parts {
			parts[j] = regexp.QuoteMeta(p)
		}
		alts[i] = strings.Join(parts, `\s+`)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}

func pattern(expr string) patternRule {
	return patternRule{re: regexp.MustCompile(`(?i)` + expr)}
}

// First match wins.
var priorityRules = []keywordRule[model.Priority]{
	{re: keywords("critical", "urgent", "asap", "immediately", "emergency"), value: model.PriorityCritical},
	{re: keywords("high priority", "high", "important"), value: model.PriorityHigh},
	{re: keywords("low priority", "low", "minor", "whenever"), value: model.PriorityLow},
}

// First match wins.
var statusRules = []keywordRule[model.Status]{
	{re: keywords("in progress", "working on", "started", "doing"), value: model.StatusInProgress},
	{re: keywords("done", "completed", "finished"), value: model.StatusDone},
}

// Checked in order; the first word present wins.
var dayParts = []dayPart{
	{word: "morning", hour: 9},
	{word: "afternoon", hour: 14},
	{word: "evening", hour: 18},
	{word: "night", hour: 20},
}

const (
	defaultDueHour   = 17
	defaultDueMinute = 0
)

// Each leading rule is tried once, in order, against the start of the text.
var leadingRules = []patternRule{
	pattern(`^(create|add|new|make)\s+(a\s+)?(task\s+)?(to\s+)?`),
	pattern(`^(remind\s+me\s+to|remember\s+to)\s+`),
	pattern(`^(i\s+need\s+to|need\s+to)\s+`),
	pattern(`^(don't|don’t|dont)\s+forget\s+to\s+`),
}

// Removal runs in order over the whole text. The copula rule precedes the
// bare priority rules so "it's high priority" leaves no dangling "it's".
// Clock times may carry a meridiem ("at 5pm") so no stray "pm" is left.
var removalRules = []patternRule{
	pattern(`\b(by|before|until|on)\s+\w+\s+\w+\s*\d*(:\d{2})?\s*(am\b|pm\b)?\s*,?\s*\d*`),
	pattern(`\b(due\s+)?(tomorrow|today|tonight|next\s+\w+|this\s+\w+)\s*(morning|afternoon|evening|night)?\b`),
	pattern(`\b(due\s+)?in\s+\d+\s+(days?|weeks?|months?|hours?)\b`),
	pattern(`\b(it's|it’s|its|it\s+is)\s+(high|low|medium|critical|urgent|important)(\s+priority)?\b`),
	pattern(`\b(high|low|medium|critical)\s+priority\b`),
	pattern(`\b(urgent|asap|important|critical)\b`),
	pattern(`\b(and\s+)?(due\s+)?at\s+(\d{1,2}:\d{2}\s*(am|pm)?|\d{1,2}\s*(am|pm))\b`),
}

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	leadingPunctRe  = regexp.MustCompile(`^[\s,.\-:;]+`)
	trailingPunctRe = regexp.MustCompile(`[\s,.\-:;]+$`)
)

const maxFallbackTitleRunes = 100
