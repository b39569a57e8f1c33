package optimize

import (
	"regexp"
	"strings"

	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/vocab"
)

const (
	maxBulletImprovements = 5
	maxMissingJDSkills    = 5
	maxMissingKeywords    = 10
	maxSummaryKeywords    = 3
)

var keywordToken = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)

// Bundle groups every suggestion category for one analysis.
type Bundle struct {
	Skills       []string            `json:"skills"`
	Experience   []JobSuggestions    `json:"experience"`
	Summary      []string            `json:"summary"`
	Keywords     []string            `json:"keywords"`
	BulletPoints []BulletImprovement `json:"bullet_points"`
}

// JobSuggestions holds the weak-phrase flags raised for one job entry.
type JobSuggestions struct {
	Title       string          `json:"title"`
	Suggestions []BulletRewrite `json:"suggestions"`
}

// BulletRewrite pairs a flagged bullet with advice and its improved variant.
type BulletRewrite struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
	Improved   string `json:"improved"`
}

// BulletImprovement is a rewrite-engine improvement worth surfacing.
type BulletImprovement struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
	Reason   string `json:"reason"`
}

// Suggester derives improvement suggestions from a profile.
type Suggester struct {
	tables   *vocab.Tables
	rewriter *Rewriter
}

// NewSuggester constructs a Suggester sharing the rewriter's vocabulary.
func NewSuggester(tables *vocab.Tables) *Suggester {
	return &Suggester{tables: tables, rewriter: NewRewriter(tables)}
}

// Suggest runs every per-field rule independently and bundles the results.
func (s *Suggester) Suggest(p profile.ResumeProfile, jobDescription string) Bundle {
	return Bundle{
		Skills:       s.suggestSkills(p.Skills, jobDescription),
		Experience:   s.suggestExperience(p.Experience),
		Summary:      s.suggestSummary(p.Summary, jobDescription),
		Keywords:     s.suggestKeywords(p.RawText, jobDescription),
		BulletPoints: s.suggestBulletImprovements(p.Experience),
	}
}

// suggestSkills lists up to five job-implied skills absent from the profile.
func (s *Suggester) suggestSkills(current []string, jobDescription string) []string {
	if jobDescription == "" {
		return nil
	}
	return s.rewriter.missingJDSkills(current, jobDescription)
}

// suggestExperience flags weak-phrase bullets, at most one flag per bullet.
func (s *Suggester) suggestExperience(jobs []profile.JobEntry) []JobSuggestions {
	var out []JobSuggestions
	for _, job := range jobs {
		entry := JobSuggestions{Title: job.Title}
		for _, bullet := range job.Description {
			lower := strings.ToLower(bullet)
			for _, weak := range s.tables.WeakPhrases {
				if strings.Contains(lower, weak.Phrase) {
					entry.Suggestions = append(entry.Suggestions, BulletRewrite{
						Original:   bullet,
						Suggestion: weak.Suggestion,
						Improved:   s.rewriter.ImproveBullet(bullet),
					})
					break
				}
			}
		}
		if len(entry.Suggestions) > 0 {
			out = append(out, entry)
		}
	}
	return out
}

func (s *Suggester) suggestSummary(summary, jobDescription string) []string {
	var suggestions []string

	if len(strings.TrimSpace(summary)) < 50 {
		suggestions = append(suggestions, "Summary is too short. Add 2-3 sentences highlighting key achievements.")
	}

	if jobDescription != "" {
		missing := missingKeywords(jobDescription, summary, s.tables)
		if len(missing) > maxSummaryKeywords {
			missing = missing[:maxSummaryKeywords]
		}
		if len(missing) > 0 {
			suggestions = append(suggestions, "Consider adding these keywords: "+strings.Join(missing, ", "))
		}
	}

	lowerSummary := strings.ToLower(summary)
	verbCount := 0
	for _, verb := range s.tables.ActionVerbs {
		if strings.Contains(lowerSummary, verb) {
			verbCount++
		}
	}
	if verbCount < 1 {
		suggestions = append(suggestions, "Start with a strong action verb to make your summary more impactful")
	}

	return suggestions
}

// suggestKeywords lists up to ten job-description keywords the resume body
// lacks.
func (s *Suggester) suggestKeywords(resumeText, jobDescription string) []string {
	if jobDescription == "" {
		return nil
	}
	missing := missingKeywords(jobDescription, resumeText, s.tables)
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	return missing
}

// suggestBulletImprovements reports bullets the rewrite transform actually
// changes, capped at five.
func (s *Suggester) suggestBulletImprovements(jobs []profile.JobEntry) []BulletImprovement {
	var out []BulletImprovement
	for _, job := range jobs {
		for _, bullet := range job.Description {
			improved := s.rewriter.ImproveBullet(bullet)
			if improved == bullet {
				continue
			}
			out = append(out, BulletImprovement{
				Original: bullet,
				Improved: improved,
				Reason:   "Made more action-oriented and results-focused",
			})
			if len(out) == maxBulletImprovements {
				return out
			}
		}
	}
	return out
}

// extractKeywords returns the unique alphabetic tokens of length >= 4 minus
// stopwords, lowercased, in first-occurrence order.
func extractKeywords(text string, tables *vocab.Tables) []string {
	seen := make(map[string]struct{})
	var keywords []string
	for _, token := range keywordToken.FindAllString(strings.ToLower(text), -1) {
		if _, stop := tables.Stopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}
	return keywords
}

// missingKeywords lists source keywords absent from target, in source order.
func missingKeywords(source, target string, tables *vocab.Tables) []string {
	targetSet := make(map[string]struct{})
	for _, kw := range extractKeywords(target, tables) {
		targetSet[kw] = struct{}{}
	}
	var missing []string
	for _, kw := range extractKeywords(source, tables) {
		if _, ok := targetSet[kw]; !ok {
			missing = append(missing, kw)
		}
	}
	return missing
}
