// Package optimize derives improvement suggestions from a parsed resume and
// rewrites its content for ATS alignment. Every transform is deterministic
// and driven by the injected vocabulary tables.
package optimize

import (
	"regexp"
	"strings"

	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/vocab"
)

// AdvisorySuffix is appended to rewritten bullets that still lack any
// quantifiable result. The persisted optimized document strips it; only the
// suggestion-facing variant carries it.
const AdvisorySuffix = " - consider adding quantifiable results"

// fallbackSummary is returned verbatim when the resume has no summary at all.
const fallbackSummary = "Experienced professional seeking new opportunities to leverage skills and experience."

var (
	quantifiablePattern = regexp.MustCompile(`\d+%|\$\d+|\d+\s*(years|months)|increased|decreased|reduced`)
	whitespaceRun       = regexp.MustCompile(`\s+`)
)

// Rewriter applies the bullet, summary and skill transforms.
type Rewriter struct {
	tables *vocab.Tables
}

// NewRewriter constructs a Rewriter.
func NewRewriter(tables *vocab.Tables) *Rewriter {
	return &Rewriter{tables: tables}
}

// ImproveBullet rewrites a single bullet: lowercases and trims, strips weak
// phrases, prepends a context-selected action verb when none is present,
// capitalizes, and appends the advisory suffix when no quantifiable result
// appears. Applying it twice never prepends a second verb.
func (r *Rewriter) ImproveBullet(bullet string) string {
	improved := strings.ToLower(strings.TrimSpace(bullet))

	for _, phrase := range r.tables.StripPhrases {
		improved = strings.ReplaceAll(improved, phrase, "")
	}
	improved = strings.TrimSpace(whitespaceRun.ReplaceAllString(improved, " "))

	if !r.tables.HasActionVerb(improved) {
		verb := r.tables.DefaultContextVerb
		for _, route := range r.tables.ContextVerbs {
			if route.Pattern.MatchString(improved) {
				verb = route.Verb
				break
			}
		}
		improved = verb + " " + improved
	}

	improved = capitalizeFirst(improved)

	if !quantifiablePattern.MatchString(improved) {
		improved += AdvisorySuffix
	}
	return improved
}

// OptimizeSummary rewrites the summary. An empty summary gets a generic
// fallback; one not opening with a recognized action verb gets "Accomplished"
// prepended. The first letter is always re-capitalized.
func (r *Rewriter) OptimizeSummary(summary, jobDescription string) string {
	_ = jobDescription // reserved for keyword-aware rewriting

	if strings.TrimSpace(summary) == "" {
		return fallbackSummary
	}

	fields := strings.Fields(summary)
	firstWord := strings.ToLower(fields[0])
	if !r.tables.IsActionVerb(firstWord) {
		summary = "Accomplished " + strings.ToLower(summary)
	}
	return capitalizeFirst(summary)
}

// EnhanceSkills appends job-implied missing skills, then deduplicates
// case-insensitively preserving first-seen casing and order.
func (r *Rewriter) EnhanceSkills(skills []string, jobDescription string) []string {
	enhanced := append([]string(nil), skills...)
	if jobDescription != "" {
		enhanced = append(enhanced, r.missingJDSkills(skills, jobDescription)...)
	}

	seen := make(map[string]struct{}, len(enhanced))
	unique := make([]string, 0, len(enhanced))
	for _, skill := range enhanced {
		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, skill)
	}
	return unique
}

// regionalFormats tags optimized output with regional conventions. The tag is
// metadata only; no text field is transformed by it.
var regionalFormats = map[string]profile.RegionalFormat{
	"US":    {Spelling: "color", DateFormat: "MM/DD/YYYY"},
	"UK":    {Spelling: "colour", DateFormat: "DD/MM/YYYY"},
	"India": {Spelling: "colour", DateFormat: "DD/MM/YYYY"},
}

// OptimizeProfile produces a new, independent profile with rewritten summary,
// bullets and skills plus the regional format tag. The advisory suffix is
// stripped from persisted bullets.
func (r *Rewriter) OptimizeProfile(p profile.ResumeProfile, jobDescription, region string) profile.ResumeProfile {
	out := p.Clone()

	out.Summary = r.OptimizeSummary(p.Summary, jobDescription)

	for i := range out.Experience {
		for j, bullet := range out.Experience[i].Description {
			improved := r.ImproveBullet(bullet)
			out.Experience[i].Description[j] = strings.TrimSuffix(improved, AdvisorySuffix)
		}
	}

	out.Skills = r.EnhanceSkills(p.Skills, jobDescription)

	rf, ok := regionalFormats[region]
	if !ok {
		rf = regionalFormats["US"]
	}
	out.RegionalFormat = &rf
	return out
}

// missingJDSkills returns up to five title-cased job-description skills the
// resume lacks, in vocabulary order.
func (r *Rewriter) missingJDSkills(current []string, jobDescription string) []string {
	have := make(map[string]struct{}, len(current))
	for _, skill := range current {
		have[strings.ToLower(skill)] = struct{}{}
	}

	var missing []string
	for _, jd := range r.tables.JDSkillsIn(jobDescription) {
		if _, ok := have[jd]; ok {
			continue
		}
		missing = append(missing, titleCase(jd))
		if len(missing) == 5 {
			break
		}
	}
	return missing
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}

// titleCase uppercases the first letter of each alphabetic run.
func titleCase(s string) string {
	out := []byte(s)
	prevLetter := false
	for i := 0; i < len(out); i++ {
		b := out[i]
		isLetter := (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
		if isLetter && !prevLetter && b >= 'a' && b <= 'z' {
			out[i] = b - ('a' - 'A')
		} else if isLetter && prevLetter && b >= 'A' && b <= 'Z' {
			out[i] = b + ('a' - 'A')
		}
		prevLetter = isLetter
	}
	return string(out)
}
