// Package parser turns normalized resume text into a structured profile. The
// heuristics are deterministic and best-effort: malformed sections produce
// partial results, never errors.
package parser

import (
	"resume-optimizer/internal/nlp"
	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/vocab"
)

// Parser assembles ResumeProfile values from raw text.
type Parser struct {
	tagger nlp.Tagger
	tables *vocab.Tables
}

// New constructs a Parser around the given tagger and vocabulary tables.
func New(tagger nlp.Tagger, tables *vocab.Tables) *Parser {
	return &Parser{tagger: tagger, tables: tables}
}

// Parse normalizes the raw text, segments it, and extracts every structured
// field. Total over any input; an empty document yields an empty profile.
func (p *Parser) Parse(raw string) profile.ResumeProfile {
	text := nlp.Normalize(raw)
	entities := p.tagger.Entities(text)

	out := profile.ResumeProfile{
		RawText:      text,
		PersonalInfo: ExtractPersonalInfo(text, entities),
		Skills:       ExtractSkills(text, entities, p.tables),
		Summary:      SummaryText(text),
	}

	for _, span := range Segment(text, "experience") {
		out.Experience = append(out.Experience, ParseJobs(span)...)
	}
	for _, span := range Segment(text, "education") {
		out.Education = append(out.Education, ParseEducation(span)...)
	}
	for _, span := range Segment(text, "projects") {
		out.Projects = append(out.Projects, ParseProjects(span)...)
	}

	return out
}
