package parser

import (
	"regexp"
	"sort"
	"strings"

	"resume-optimizer/internal/nlp"
	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/vocab"
)

var (
	jobTitlePattern = regexp.MustCompile(`(?i)(senior|junior|lead|manager|director|engineer|developer|analyst)`)
	degreePattern   = regexp.MustCompile(`(?i)\b(B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?|PhD|Bachelor|Master|Doctorate)`)

	// Tried independently and concatenated; duplicate hits across patterns
	// are kept, downstream consumers depend on the raw counts.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{4}`),
		regexp.MustCompile(`\b\d{1,2}/\d{4}`),
		regexp.MustCompile(`\b\d{4}`),
	}

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// lineState is the per-section parse state: before the first header line, or
// accumulating detail lines under the current entry.
type lineState int

const (
	seekingHeader lineState = iota
	accumulating
)

// ParseJobs runs the job state machine over one experience span. A line
// matching the title pattern opens a new entry; subsequent lines longer than
// ten characters accumulate as description. Company is never recovered by
// this heuristic.
func ParseJobs(section string) []profile.JobEntry {
	var (
		jobs    []profile.JobEntry
		current profile.JobEntry
		state   = seekingHeader
	)

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if jobTitlePattern.MatchString(line) {
			if state == accumulating {
				jobs = append(jobs, current)
			}
			current = profile.JobEntry{
				Title: line,
				Dates: ExtractDates(line),
			}
			state = accumulating
			continue
		}
		if state == accumulating && len(line) > 10 {
			current.Description = append(current.Description, line)
		}
	}
	if state == accumulating {
		jobs = append(jobs, current)
	}
	return jobs
}

// ParseEducation mirrors the job state machine with a degree-word header
// indicator and a shorter minimum detail length.
func ParseEducation(section string) []profile.EducationEntry {
	var (
		entries []profile.EducationEntry
		current profile.EducationEntry
		state   = seekingHeader
	)

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if degreePattern.MatchString(line) {
			if state == accumulating {
				entries = append(entries, current)
			}
			current = profile.EducationEntry{
				Degree: line,
				Dates:  ExtractDates(line),
			}
			state = accumulating
			continue
		}
		if state == accumulating && len(line) > 5 {
			current.Details = append(current.Details, line)
		}
	}
	if state == accumulating {
		entries = append(entries, current)
	}
	return entries
}

// ParseProjects treats any short line not opening with a bullet glyph as a
// new project title. The heuristic is permissive and will over-segment prose.
func ParseProjects(section string) []profile.ProjectEntry {
	var (
		projects []profile.ProjectEntry
		current  profile.ProjectEntry
		state    = seekingHeader
	)

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(line) < 100 && !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "•") {
			if state == accumulating {
				projects = append(projects, current)
			}
			current = profile.ProjectEntry{Name: line}
			state = accumulating
			continue
		}
		if state == accumulating && len(line) > 10 {
			current.Description = append(current.Description, line)
		}
	}
	if state == accumulating {
		projects = append(projects, current)
	}
	return projects
}

// ExtractDates returns every date token each pattern finds, in pattern order.
// Duplicates across patterns are not removed.
func ExtractDates(line string) []string {
	var dates []string
	for _, pattern := range datePatterns {
		dates = append(dates, pattern.FindAllString(line, -1)...)
	}
	return dates
}

// ExtractSkills unions vocabulary pattern matches (title-cased) with entity
// surface forms tagged ORG or PRODUCT, then sorts lexicographically. The two
// sources collapse only when surface forms are byte-identical.
func ExtractSkills(text string, entities []nlp.Entity, tables *vocab.Tables) []string {
	seen := make(map[string]struct{})
	lower := strings.ToLower(text)

	for _, pattern := range tables.SkillPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			seen[titleCase(match)] = struct{}{}
		}
	}
	for _, ent := range entities {
		if ent.Label == nlp.LabelOrg || ent.Label == nlp.LabelProduct {
			seen[ent.Text] = struct{}{}
		}
	}

	skills := make([]string, 0, len(seen))
	for skill := range seen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}

// ExtractPersonalInfo picks the first email- and phone-shaped tokens and the
// first PERSON entity. Fields left unset when nothing matches.
func ExtractPersonalInfo(text string, entities []nlp.Entity) profile.PersonalInfo {
	info := profile.PersonalInfo{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}
	for _, ent := range entities {
		if ent.Label == nlp.LabelPerson {
			info.Name = ent.Text
			break
		}
	}
	return info
}

// titleCase uppercases the first letter of every alphabetic run, matching the
// casing the skill vocabulary produces ("problem-solving" -> "Problem-Solving").
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if isLetter && !prevLetter {
			if r >= 'a' && r <= 'z' {
				out[i] = r - ('a' - 'A')
			}
		} else if isLetter {
			if r >= 'A' && r <= 'Z' {
				out[i] = r + ('a' - 'A')
			}
		}
		prevLetter = isLetter
	}
	return string(out)
}
