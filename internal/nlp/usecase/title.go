package usecase

import (
	"unicode"
	"unicode/utf8"
)

// ExtractTitle strips imperative lead-ins plus temporal and priority phrasing
// from the utterance. The result may be empty.
func ExtractTitle(text string) string {
	title := text
	for _, r := range leadingRules {
		title = r.re.ReplaceAllString(title, r.replacement)
	}
	for _, r := range removalRules {
		title = r.re.ReplaceAllString(title, r.replacement)
	}
	return normalizeTitle(title)
}

// normalizeTitle collapses whitespace and strips runs of punctuation and
// spaces from both ends, so it is a fixed point on its own output.
func normalizeTitle(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = leadingPunctRe.ReplaceAllString(s, "")
	s = trailingPunctRe.ReplaceAllString(s, "")
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
