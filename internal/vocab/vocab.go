// Package vocab holds the fixed vocabulary and weight tables the analysis
// engines run on. Tables are built once at startup and treated as read-only;
// engines receive a *Tables so tests can swap in smaller vocabularies.
package vocab

import (
	"regexp"
	"strings"
)

// Tables bundles every fixed vocabulary used by parsing, scoring and rewriting.
type Tables struct {
	// SkillPatterns match known skills inside resume text, case-insensitive.
	// Matches are title-cased before entering the profile skill list.
	SkillPatterns []*regexp.Regexp

	// JDSkills is the flat skill vocabulary matched as substrings against
	// job-description text (and resume bodies when comparing the two).
	JDSkills []string

	// ActionVerbs is the full verb list used for rewrite and summary checks.
	ActionVerbs []string

	// ActionVerbSample is the small probe set the scorer and suggestion
	// engine look for in full resume text.
	ActionVerbSample []string

	// PresentTenseSample pairs with the past-tense probe verbs for the
	// tense-mixing heuristic.
	PresentTenseSample []string

	// PastTenseSample are the past-tense probe verbs.
	PastTenseSample []string

	// WeakPhrases maps a weak bullet opener to its suggestion text, in
	// evaluation order (first match wins).
	WeakPhrases []WeakPhrase

	// StripPhrases are removed outright when rewriting a bullet.
	StripPhrases []string

	// ContextVerbs routes a bullet with no action verb to a prepended verb,
	// first match wins.
	ContextVerbs []ContextVerb

	// DefaultContextVerb is used when no ContextVerbs pattern matches.
	DefaultContextVerb string

	// Stopwords are excluded from keyword extraction.
	Stopwords map[string]struct{}

	// QuantPatterns match quantifiable-achievement phrasing.
	QuantPatterns []*regexp.Regexp

	// Weights are the ATS category weights.
	Weights map[string]float64

	// LinkedInSkills are commonly searched skills appended to LinkedIn
	// skill suggestions when absent.
	LinkedInSkills []string

	// IndustryTerms pad LinkedIn keyword suggestions.
	IndustryTerms []string

	// TechnicalIndicators classify a skill as technical for grouping.
	TechnicalIndicators []string
}

// WeakPhrase is a weak bullet opener plus the advice shown for it.
type WeakPhrase struct {
	Phrase     string
	Suggestion string
}

// ContextVerb is one row of the verb routing table.
type ContextVerb struct {
	Pattern *regexp.Regexp
	Verb    string
}

// Default builds the standard tables. Call once at startup.
func Default() *Tables {
	return &Tables{
		SkillPatterns: []*regexp.Regexp{
			// Programming languages
			regexp.MustCompile(`(?i)\b(python|java|javascript|typescript|c\+\+|c#|go|rust|swift|kotlin|r|sql)\b`),
			// Frameworks
			regexp.MustCompile(`(?i)\b(react|angular|vue|django|flask|spring|express|laravel|rails|tensorflow|pytorch)\b`),
			// Tooling and platforms
			regexp.MustCompile(`(?i)\b(docker|kubernetes|aws|azure|gcp|git|jenkins|ansible|terraform)\b`),
			// Soft skills
			regexp.MustCompile(`(?i)\b(leadership|communication|teamwork|problem-solving|critical thinking|adaptability)\b`),
		},
		JDSkills: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
			"sql", "nosql", "mongodb", "postgresql", "mysql",
			"react", "angular", "vue", "django", "flask", "spring", "node.js",
			"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform",
			"machine learning", "ai", "data science", "big data", "tableau",
			"agile", "scrum", "devops", "ci/cd",
		},
		ActionVerbs: []string{
			"accelerated", "achieved", "administered", "advanced", "advised", "allocated",
			"analyzed", "assembled", "assessed", "assisted", "attained", "authored",
			"balanced", "boosted", "built", "calculated", "catalyzed", "chaired",
			"changed", "coached", "collaborated", "compiled", "completed", "conceived",
			"conducted", "consolidated", "constructed", "consulted", "controlled",
			"coordinated", "created", "decreased", "delivered", "designed", "developed",
			"devised", "directed", "drove", "edited", "eliminated", "engineered",
			"enhanced", "established", "evaluated", "executed", "expanded", "facilitated",
			"forecasted", "formed", "founded", "generated", "guided", "headed",
			"implemented", "improved", "increased", "influenced", "initiated", "innovated",
			"installed", "instituted", "integrated", "introduced", "invented", "launched",
			"led", "managed", "marketed", "mastered", "mediated", "mentored",
			"modernized", "monitored", "motivated", "negotiated", "operated", "optimized",
			"orchestrated", "organized", "originated", "overhauled", "oversaw", "performed",
			"pioneered", "planned", "prepared", "presented", "processed", "produced",
			"programmed", "projected", "promoted", "proposed", "provided", "published",
			"purchased", "recommended", "recruited", "reduced", "regulated", "reorganized",
			"researched", "restructured", "revamped", "reviewed", "revised", "saved",
			"scheduled", "secured", "selected", "simplified", "sold", "solved",
			"spearheaded", "started", "streamlined", "strengthened", "structured", "supervised",
			"supported", "surpassed", "targeted", "trained", "transformed", "translated",
			"trimmed", "unified", "upgraded", "utilized", "validated", "verified",
			"won", "wrote",
		},
		ActionVerbSample:   []string{"managed", "developed", "implemented", "led", "created", "optimized"},
		PastTenseSample:    []string{"managed", "developed", "created", "led"},
		PresentTenseSample: []string{"manage", "develop", "create", "lead"},
		WeakPhrases: []WeakPhrase{
			{Phrase: "responsible for", Suggestion: "Use action verbs instead of 'responsible for'"},
			{Phrase: "duties included", Suggestion: "Start with action verbs"},
			{Phrase: "helped with", Suggestion: "Be more specific about your contribution"},
			{Phrase: "worked on", Suggestion: "Specify what you achieved"},
		},
		StripPhrases: []string{
			"responsible for", "duties included", "helped with", "worked on", "was involved in",
		},
		ContextVerbs: []ContextVerb{
			{Pattern: regexp.MustCompile(`manage|lead|supervis`), Verb: "Managed"},
			{Pattern: regexp.MustCompile(`develop|create|build`), Verb: "Developed"},
			{Pattern: regexp.MustCompile(`analyze|research|evaluat`), Verb: "Analyzed"},
			{Pattern: regexp.MustCompile(`improv|optimiz|enhanc`), Verb: "Improved"},
			{Pattern: regexp.MustCompile(`implement|integrat|deploy`), Verb: "Implemented"},
		},
		DefaultContextVerb: "Managed",
		Stopwords: map[string]struct{}{
			"with": {}, "this": {}, "that": {}, "have": {},
			"from": {}, "they": {}, "were": {}, "their": {},
		},
		QuantPatterns: []*regexp.Regexp{
			regexp.MustCompile(`increased by \d+%`),
			regexp.MustCompile(`reduced by \d+%`),
			regexp.MustCompile(`saved \$\d+`),
			regexp.MustCompile(`improved by \d+%`),
			regexp.MustCompile(`managed \$\d+`),
		},
		Weights: map[string]float64{
			"skills_match": 0.35,
			"keywords":     0.25,
			"formatting":   0.15,
			"readability":  0.15,
			"grammar":      0.10,
		},
		LinkedInSkills: []string{
			"Problem Solving", "Communication", "Leadership",
			"Project Management", "Teamwork", "Adaptability",
		},
		IndustryTerms: []string{
			"technology", "software", "development", "engineering",
			"management", "analysis", "strategy", "optimization",
			"innovation", "solutions", "consulting", "leadership",
		},
		TechnicalIndicators: []string{
			"python", "java", "javascript", "sql", "aws", "docker", "kubernetes",
			"react", "angular", "machine learning", "ai", "data", "cloud",
			"devops", "backend", "frontend", "fullstack", "database",
		},
	}
}

// JDSkillsIn returns the vocabulary skills present as substrings of the
// lowercased text, in vocabulary order. Used for job-description matching.
func (t *Tables) JDSkillsIn(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range t.JDSkills {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// HasActionVerb reports whether any verb from the full list appears as a
// substring of the lowercased text.
func (t *Tables) HasActionVerb(lower string) bool {
	for _, verb := range t.ActionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

// IsActionVerb reports whether word equals one of the action verbs.
func (t *Tables) IsActionVerb(word string) bool {
	for _, verb := range t.ActionVerbs {
		if word == verb {
			return true
		}
	}
	return false
}
