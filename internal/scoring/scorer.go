// Package scoring computes the weighted ATS score for a parsed resume.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/vocab"
)

// Category maxima. Each sub-score is capped at its maximum and normalized by
// it before weighting, keeping the total inside [0,100].
const (
	maxSkillsMatch = 40.0
	maxKeywords    = 20.0
	maxFormatting  = 15.0
	maxReadability = 15.0
	maxGrammar     = 10.0
)

var (
	bulletLinePattern = regexp.MustCompile(`^[•\-*]\s`)
	sentenceSplit     = regexp.MustCompile(`[.!?]+`)
	lowercaseIToken   = regexp.MustCompile(`\bi\s`)
)

// CategoryScore is one scored category with its human-readable details.
type CategoryScore struct {
	Score    float64  `json:"score"`
	MaxScore float64  `json:"max_score"`
	Details  []string `json:"details"`
}

// ScoreBreakdown is the full scoring result.
type ScoreBreakdown struct {
	TotalScore float64                  `json:"total_score"`
	Categories map[string]CategoryScore `json:"categories"`
}

// Scorer evaluates profiles against the fixed weight tables.
type Scorer struct {
	tables *vocab.Tables
}

// New constructs a Scorer.
func New(tables *vocab.Tables) *Scorer {
	return &Scorer{tables: tables}
}

// Score computes the five category scores and the weighted 0-100 total,
// rounded to one decimal. Deterministic for identical input; skill order
// never affects the result.
func (s *Scorer) Score(p profile.ResumeProfile, jobDescription string) ScoreBreakdown {
	skillsMatch := s.skillsMatch(p.Skills, jobDescription)
	keywords := s.keywordsScore(p.RawText)
	formatting := s.formattingScore(p.RawText)
	readability := s.readabilityScore(p.RawText)
	grammar := s.grammarScore(p.RawText)

	weighted := skillsMatch/maxSkillsMatch*s.weight("skills_match") +
		keywords/maxKeywords*s.weight("keywords") +
		formatting/maxFormatting*s.weight("formatting") +
		readability/maxReadability*s.weight("readability") +
		grammar/maxGrammar*s.weight("grammar")

	totalWeight := 0.0
	for _, w := range s.tables.Weights {
		totalWeight += w
	}
	total := 0.0
	if totalWeight > 0 {
		total = weighted / totalWeight * 100
	}

	return ScoreBreakdown{
		TotalScore: round1(total),
		Categories: map[string]CategoryScore{
			"Skills Match": {
				Score:    round1(skillsMatch),
				MaxScore: maxSkillsMatch,
				Details:  s.skillsMatchDetails(p.Skills, jobDescription),
			},
			"Keywords": {
				Score:    round1(keywords),
				MaxScore: maxKeywords,
				Details:  s.keywordsDetails(p.RawText),
			},
			"Formatting": {
				Score:    round1(formatting),
				MaxScore: maxFormatting,
				Details:  s.formattingDetails(p.RawText),
			},
			"Readability": {
				Score:    round1(readability),
				MaxScore: maxReadability,
				Details:  s.readabilityDetails(p.RawText),
			},
			"Grammar": {
				Score:    round1(grammar),
				MaxScore: maxGrammar,
				Details:  s.grammarDetails(p.RawText),
			},
		},
	}
}

func (s *Scorer) weight(category string) float64 {
	return s.tables.Weights[category]
}

// skillsMatch scores overlap with job-description skills, or falls back to a
// pure quantity heuristic when no job description is given.
func (s *Scorer) skillsMatch(skills []string, jobDescription string) float64 {
	if jobDescription == "" {
		return math.Min(float64(len(skills))/20*maxSkillsMatch, maxSkillsMatch)
	}
	jdSkills := s.tables.JDSkillsIn(jobDescription)
	if len(jdSkills) == 0 {
		return 0
	}
	matched := matchedSkills(skills, jdSkills)
	return math.Min(float64(len(matched))/float64(len(jdSkills))*maxSkillsMatch, maxSkillsMatch)
}

func matchedSkills(skills, jdSkills []string) []string {
	have := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		have[strings.ToLower(skill)] = struct{}{}
	}
	var matched []string
	for _, jd := range jdSkills {
		if _, ok := have[jd]; ok {
			matched = append(matched, jd)
		}
	}
	return matched
}

func (s *Scorer) keywordsScore(text string) float64 {
	lower := strings.ToLower(text)

	found := 0
	for _, verb := range s.tables.ActionVerbSample {
		if strings.Contains(lower, verb) {
			found++
		}
	}
	score := float64(found) / float64(len(s.tables.ActionVerbSample)) * 10

	score += math.Min(float64(quantCount(lower, s.tables))*2, 10)
	return math.Min(score, maxKeywords)
}

func quantCount(lower string, tables *vocab.Tables) int {
	count := 0
	for _, pattern := range tables.QuantPatterns {
		count += len(pattern.FindAllString(lower, -1))
	}
	return count
}

func (s *Scorer) formattingScore(text string) float64 {
	score := maxFormatting
	lower := strings.ToLower(text)

	for _, section := range []string{"experience", "education", "skills"} {
		if !strings.Contains(lower, section) {
			score -= 2
		}
	}
	if bulletRatio(text) < 0.3 {
		score -= 2
	}
	words := len(strings.Fields(text))
	if words < 200 || words > 800 {
		score -= 2
	}
	return math.Max(score, 0)
}

func bulletRatio(text string) float64 {
	lines := strings.Split(text, "\n")
	bullets, substantial := 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if bulletLinePattern.MatchString(trimmed) {
			bullets++
		}
		if len(trimmed) > 10 {
			substantial++
		}
	}
	if substantial == 0 {
		substantial = 1
	}
	return float64(bullets) / float64(substantial)
}

func (s *Scorer) readabilityScore(text string) float64 {
	sentences := sentenceSplit.Split(text, -1)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}
	avg := float64(len(words)) / float64(len(sentences))
	switch {
	case avg <= 15:
		return 15
	case avg <= 20:
		return 12
	case avg <= 25:
		return 8
	default:
		return 5
	}
}

func (s *Scorer) grammarScore(text string) float64 {
	score := maxGrammar
	lower := strings.ToLower(text)

	deduction := float64(len(lowercaseIToken.FindAllString(lower, -1))) * 0.5
	score -= math.Min(deduction, 5)

	if tenseCount(lower, s.tables.PastTenseSample) > 0 && tenseCount(lower, s.tables.PresentTenseSample) > 0 {
		score--
	}
	return math.Max(score, 0)
}

func tenseCount(lower string, verbs []string) int {
	count := 0
	for _, verb := range verbs {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(verb) + `\b`)
		count += len(pattern.FindAllString(lower, -1))
	}
	return count
}

func (s *Scorer) skillsMatchDetails(skills []string, jobDescription string) []string {
	if jobDescription == "" {
		details := []string{fmt.Sprintf("Found %d skills in resume", len(skills))}
		if len(skills) < 10 {
			details = append(details, "Consider adding more relevant skills")
		}
		return details
	}

	jdSkills := s.tables.JDSkillsIn(jobDescription)
	matched := matchedSkills(skills, jdSkills)
	details := []string{fmt.Sprintf("Matched %d out of %d required skills", len(matched), len(jdSkills))}

	missing := missingSkills(skills, jdSkills)
	if len(missing) > 0 {
		details = append(details, "Missing skills: "+strings.Join(missing, ", "))
	}
	return details
}

func missingSkills(skills, jdSkills []string) []string {
	have := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		have[strings.ToLower(skill)] = struct{}{}
	}
	var missing []string
	for _, jd := range jdSkills {
		if _, ok := have[jd]; !ok {
			missing = append(missing, jd)
		}
	}
	return missing
}

func (s *Scorer) keywordsDetails(text string) []string {
	lower := strings.ToLower(text)
	found := 0
	for _, verb := range s.tables.ActionVerbSample {
		if strings.Contains(lower, verb) {
			found++
		}
	}
	quant := quantCount(lower, s.tables)

	details := []string{
		fmt.Sprintf("Used %d action verbs", found),
		fmt.Sprintf("Found %d quantifiable achievements", quant),
	}
	if quant < 2 {
		details = append(details, "Add more quantifiable results (e.g., 'increased efficiency by 25%')")
	}
	return details
}

func (s *Scorer) formattingDetails(text string) []string {
	lower := strings.ToLower(text)
	var missing []string
	for _, section := range []string{"experience", "education", "skills"} {
		if !strings.Contains(lower, section) {
			missing = append(missing, section)
		}
	}

	var details []string
	if len(missing) > 0 {
		details = append(details, "Missing sections: "+strings.Join(missing, ", "))
	} else {
		details = append(details, "All essential sections present")
	}

	if bulletRatio(text) < 0.3 {
		details = append(details, "Consider using more bullet points for readability")
	} else {
		details = append(details, "Good use of bullet points")
	}

	words := len(strings.Fields(text))
	switch {
	case words >= 300 && words <= 600:
		details = append(details, "Appropriate resume length")
	case words < 300:
		details = append(details, "Resume might be too short - add more details")
	default:
		details = append(details, "Resume might be too long - consider condensing")
	}
	return details
}

func (s *Scorer) readabilityDetails(text string) []string {
	sentences := sentenceSplit.Split(text, -1)
	words := strings.Fields(text)
	if len(sentences) == 0 {
		return []string{"Unable to analyze readability"}
	}
	avg := float64(len(words)) / float64(len(sentences))
	switch {
	case avg <= 15:
		return []string{"Excellent sentence length"}
	case avg <= 20:
		return []string{"Good sentence length"}
	case avg <= 25:
		return []string{"Consider shortening some sentences"}
	default:
		return []string{"Some sentences are too long - break them up"}
	}
}

func (s *Scorer) grammarDetails(text string) []string {
	details := []string{"Basic grammar check passed"}
	if lowercaseIToken.MatchString(text) {
		details = append(details, "Found lowercase 'I' - should be capitalized")
	}
	return details
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
