package parser

import (
	"sort"
	"strings"
)

// sectionKeywords anchors each logical section to the header words that open
// it. Matching is case-insensitive substring search, so a header buried in a
// line still anchors a span.
var sectionKeywords = map[string][]string{
	"experience": {"experience", "work", "employment"},
	"education":  {"education", "academic"},
	"projects":   {"projects", "portfolio"},
	"summary":    {"summary", "objective", "profile"},
}

// Segment finds the non-overlapping spans of text belonging to the named
// section. A span starts at a section keyword and ends at the next keyword of
// any other section, or end of text. Multiple spans for the same section are
// all returned; absence yields nil.
func Segment(text, sectionName string) []string {
	keywords, ok := sectionKeywords[sectionName]
	if !ok {
		return nil
	}
	lower := strings.ToLower(text)

	starts := keywordPositions(lower, keywords)
	if len(starts) == 0 {
		return nil
	}
	terminators := otherSectionKeywords(sectionName)

	var spans []string
	covered := -1
	for _, start := range starts {
		if start <= covered {
			continue
		}
		end := nextKeyword(lower, terminators, start+1)
		spans = append(spans, text[start:end])
		covered = end - 1
	}
	return spans
}

// SummaryText returns the summary section, falling back to the first three
// non-trivial lines of the document when no summary header exists.
func SummaryText(text string) string {
	spans := Segment(text, "summary")
	if len(spans) > 0 {
		return strings.TrimSpace(spans[0])
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	var kept []string
	for _, line := range lines {
		if len(strings.TrimSpace(line)) > 10 {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func keywordPositions(lower string, keywords []string) []int {
	var positions []int
	for _, kw := range keywords {
		idx := 0
		for {
			pos := strings.Index(lower[idx:], kw)
			if pos < 0 {
				break
			}
			positions = append(positions, idx+pos)
			idx += pos + 1
			if idx >= len(lower) {
				break
			}
		}
	}
	sort.Ints(positions)
	return positions
}

func otherSectionKeywords(sectionName string) []string {
	var out []string
	for name, kws := range sectionKeywords {
		if name == sectionName {
			continue
		}
		out = append(out, kws...)
	}
	// skills headers also terminate sections even though skills have no
	// segmenter category of their own
	out = append(out, "skills")
	return out
}

func nextKeyword(lower string, keywords []string, from int) int {
	end := len(lower)
	if from >= end {
		return end
	}
	for _, kw := range keywords {
		if pos := strings.Index(lower[from:], kw); pos >= 0 && from+pos < end {
			end = from + pos
		}
	}
	return end
}
