package datemath

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

type dateRule struct {
	re *regexp.Regexp
	// resolve returns the referenced day (or instant when clock is true).
	resolve func(p *Parser, g []string, base time.Time) (t time.Time, clock bool, ok bool)
}

type clockRule struct {
	re      *regexp.Regexp
	resolve func(g []string) (hour, min int, ok bool)
}

const monthPattern = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Rules are tried in order; an earlier rule claims its span before later ones.
var dateRules = []dateRule{
	{
		re: regexp.MustCompile(`(?i)\b(?:the\s+)?day\s+after\s+tomorrow\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			t, err := p.Parse("day after tomorrow", base)
			return t, false, err == nil
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|yesterday)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			t, err := p.Parse(g[1], base)
			return t, false, err == nil
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bthis\s+(?:morning|afternoon|evening)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			return p.startOfDay(base), false, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:(next|this|on)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			qualifier := strings.ToLower(g[1])
			day := strings.ToLower(g[2])
			if qualifier == "next" {
				t, err := p.Parse("next "+day, base)
				return t, false, err == nil
			}
			n := daysUntil(base.Weekday(), weekdays[day], true)
			return p.startOfDay(base.AddDate(0, 0, n)), false, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:this\s+)?weekend\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			n := daysUntil(base.Weekday(), time.Saturday, true)
			return p.startOfDay(base.AddDate(0, 0, n)), false, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bnext\s+(week|month|year)\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			switch strings.ToLower(g[1]) {
			case "week":
				return p.startOfDay(base.AddDate(0, 0, 7)), false, true
			case "month":
				return p.startOfDay(base.AddDate(0, 1, 0)), false, true
			default:
				return p.startOfDay(base.AddDate(1, 0, 0)), false, true
			}
		},
	},
	{
		re: regexp.MustCompile(`(?i)\bin\s+(\d+|an?|one|two|three|four|five|six|seven|eight|nine|ten)\s+(minutes?|mins?|hours?|hrs?|days?|weeks?|months?)\b`),
		resolve: resolveOffset,
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			year, _ := strconv.Atoi(g[1])
			month, _ := strconv.Atoi(g[2])
			day, _ := strconv.Atoi(g[3])
			t, ok := p.calendarDate(year, time.Month(month), day)
			return t, false, ok
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b` + monthPattern + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s+(\d{4})\b)?`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			day, _ := strconv.Atoi(g[2])
			return p.monthDay(base, g[1], day, g[3])
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthPattern + `\b(?:,?\s+(\d{4})\b)?`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			day, _ := strconv.Atoi(g[1])
			return p.monthDay(base, g[2], day, g[3])
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?\b`),
		resolve: func(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
			month, _ := strconv.Atoi(g[1])
			day, _ := strconv.Atoi(g[2])
			if g[3] == "" {
				return p.upcoming(base, time.Month(month), day)
			}
			year, _ := strconv.Atoi(g[3])
			if year < 100 {
				year += 2000
			}
			t, ok := p.calendarDate(year, time.Month(month), day)
			return t, false, ok
		},
	},
}

var clockRules = []clockRule{
	{
		// 15:30, 3:30 pm, 3:30 p.m.
		re: regexp.MustCompile(`(?i)\b([01]?\d|2[0-3]):([0-5]\d)\b(?:\s*([ap])\.?m\b\.?)?`),
		resolve: func(g []string) (int, int, bool) {
			hour, _ := strconv.Atoi(g[1])
			minute, _ := strconv.Atoi(g[2])
			return applyMeridiem(hour, minute, g[3])
		},
	},
	{
		// 5pm, 11 a.m.
		re: regexp.MustCompile(`(?i)\b(1[0-2]|0?[1-9])\s*([ap])\.?m\b\.?`),
		resolve: func(g []string) (int, int, bool) {
			hour, _ := strconv.Atoi(g[1])
			return applyMeridiem(hour, 0, g[2])
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(noon|midday|midnight)\b`),
		resolve: func(g []string) (int, int, bool) {
			if strings.EqualFold(g[1], "midnight") {
				return 0, 0, true
			}
			return 12, 0, true
		},
	},
	{
		// bare "at 7"; runs last so "at 7:30" and "at 7pm" are claimed above.
		re: regexp.MustCompile(`(?i)\bat\s+([01]?\d|2[0-3])\b`),
		resolve: func(g []string) (int, int, bool) {
			hour, _ := strconv.Atoi(g[1])
			return hour, 0, true
		},
	},
}

// connectorRe matches the filler allowed between a date and the clock time it owns.
var connectorRe = regexp.MustCompile(`(?i)^[\s,]*(?:(?:at|on|by|around|@)\s*)?[\s,]*$`)

// FindPhrases returns every date/time reference in text, ordered by position.
// A date directly followed or preceded by a clock time is reported as one phrase.
func (p *Parser) FindPhrases(text string, base time.Time) []Phrase {
	base = base.In(p.location)

	var hits []match
	claim := func(m match) {
		for _, h := range hits {
			if m.start < h.end && h.start < m.end {
				return
			}
		}
		hits = append(hits, m)
	}

	for _, r := range dateRules {
		for _, idx := range r.re.FindAllStringSubmatchIndex(text, -1) {
			t, clock, ok := r.resolve(p, submatches(text, idx), base)
			if !ok {
				continue
			}
			m := match{start: idx[0], end: idx[1], text: text[idx[0]:idx[1]], date: t, hasClock: clock, isDate: true}
			if clock {
				m.hour, m.min = t.Hour(), t.Minute()
			}
			claim(m)
		}
	}
	for _, r := range clockRules {
		for _, idx := range r.re.FindAllStringSubmatchIndex(text, -1) {
			hour, minute, ok := r.resolve(submatches(text, idx))
			if !ok {
				continue
			}
			claim(match{start: idx[0], end: idx[1], text: text[idx[0]:idx[1]], hour: hour, min: minute, hasClock: true})
		}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })
	return p.merge(text, hits, base)
}

func (p *Parser) merge(text string, hits []match, base time.Time) []Phrase {
	used := make([]bool, len(hits))
	phrases := make([]Phrase, 0, len(hits))

	for i, h := range hits {
		if !h.isDate {
			continue
		}
		used[i] = true
		ph := Phrase{Text: h.text, Index: h.start, Time: h.date, TimeExplicit: h.hasClock}

		if !h.hasClock {
			if j := adjacentClock(text, hits, used, i); j >= 0 {
				c := hits[j]
				used[j] = true
				ph.Time = p.at(h.date, c.hour, c.min)
				ph.TimeExplicit = true
				start, end := min(h.start, c.start), max(h.end, c.end)
				ph.Text, ph.Index = text[start:end], start
			}
		}
		phrases = append(phrases, ph)
	}

	today := p.startOfDay(base)
	for i, h := range hits {
		if used[i] {
			continue
		}
		phrases = append(phrases, Phrase{
			Text:         h.text,
			Index:        h.start,
			Time:         p.at(today, h.hour, h.min),
			TimeExplicit: true,
		})
	}

	sort.SliceStable(phrases, func(i, j int) bool { return phrases[i].Index < phrases[j].Index })
	return phrases
}

// adjacentClock finds an unused clock-only hit next to hits[i], preferring the one after it.
func adjacentClock(text string, hits []match, used []bool, i int) int {
	if j := i + 1; j < len(hits) && !used[j] && !hits[j].isDate &&
		connectorRe.MatchString(text[hits[i].end:hits[j].start]) {
		return j
	}
	if j := i - 1; j >= 0 && !used[j] && !hits[j].isDate &&
		connectorRe.MatchString(text[hits[j].end:hits[i].start]) {
		return j
	}
	return -1
}

// maxCalendarOffset bounds "in N days|weeks|months" to roughly ten thousand years.
var maxCalendarOffset = map[string]int{
	"d": 10000 * 366,
	"w": 10000 * 53,
	"m": 10000 * 12,
}

func resolveOffset(p *Parser, g []string, base time.Time) (time.Time, bool, bool) {
	amount, ok := numberWords[strings.ToLower(g[1])]
	if !ok {
		n, err := strconv.Atoi(g[1])
		if err != nil {
			return time.Time{}, false, false
		}
		amount = n
	}

	unit := strings.ToLower(g[2])
	switch {
	case strings.HasPrefix(unit, "min"):
		if int64(amount) > math.MaxInt64/int64(time.Minute) {
			return time.Time{}, false, false
		}
		return base.Add(time.Duration(amount) * time.Minute), true, true
	case strings.HasPrefix(unit, "h"):
		if int64(amount) > math.MaxInt64/int64(time.Hour) {
			return time.Time{}, false, false
		}
		return base.Add(time.Duration(amount) * time.Hour), true, true
	}

	if amount > maxCalendarOffset[unit[:1]] {
		return time.Time{}, false, false
	}

	if !strings.HasSuffix(unit, "s") {
		unit += "s"
	}
	t, err := p.Parse(fmt.Sprintf("in %d %s", amount, unit), base)
	return t, false, err == nil
}

func (p *Parser) monthDay(base time.Time, monthName string, day int, yearText string) (time.Time, bool, bool) {
	month := months[strings.ToLower(monthName)[:3]]
	if yearText == "" {
		return p.upcoming(base, month, day)
	}
	year, _ := strconv.Atoi(yearText)
	t, ok := p.calendarDate(year, month, day)
	return t, false, ok
}

// upcoming resolves a year-less month/day to this year, or next year once it has passed.
func (p *Parser) upcoming(base time.Time, month time.Month, day int) (time.Time, bool, bool) {
	t, ok := p.calendarDate(base.Year(), month, day)
	if !ok {
		return time.Time{}, false, false
	}
	if t.Before(p.startOfDay(base)) {
		t, ok = p.calendarDate(base.Year()+1, month, day)
	}
	return t, false, ok
}

// calendarDate rejects dates that time.Date would normalize (e.g. Feb 30).
func (p *Parser) calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func (p *Parser) at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

func applyMeridiem(hour, minute int, meridiem string) (int, int, bool) {
	switch strings.ToLower(meridiem) {
	case "":
		return hour, minute, true
	case "a":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "p":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour != 12 {
			hour += 12
		}
	}
	return hour, minute, true
}

// submatches expands a FindAllStringSubmatchIndex entry; unmatched groups become "".
func submatches(text string, idx []int) []string {
	groups := make([]string, len(idx)/2)
	for i := range groups {
		if idx[2*i] >= 0 {
			groups[i] = text[idx[2*i]:idx[2*i+1]]
		}
	}
	return groups
}
