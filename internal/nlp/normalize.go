// Package nlp provides text normalization and a lightweight rule-based
// entity tagger used by the resume parser.
package nlp

import (
	"regexp"
	"strings"
)

var (
	// Characters outside this set are stripped before parsing. The set keeps
	// the tokens the downstream heuristics key on: bullet glyphs, email and
	// phone punctuation, currency and percent figures.
	disallowedChars = regexp.MustCompile(`[^\w\s.,!?;:•\-*@$%#+/()]`)

	spaceRuns   = regexp.MustCompile(`[^\S\n]+`)
	newlineRuns = regexp.MustCompile(`\s*\n\s*`)
)

// Normalize cleans raw extracted text: strips disallowed characters,
// collapses horizontal whitespace runs to a single space and newline runs to
// a single newline, and trims the result. Line structure is preserved because
// the section and field parsers are line-oriented. Total over any input.
func Normalize(raw string) string {
	text := disallowedChars.ReplaceAllString(raw, "")
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
