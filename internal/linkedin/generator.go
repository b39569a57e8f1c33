// Package linkedin generates templated LinkedIn profile content from a parsed
// resume. It shares the optimizer's action-verb and skill vocabulary.
package linkedin

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/vocab"
)

const (
	maxHeadlines      = 5
	maxLinkedInSkills = 15
	maxKeywords       = 20
	defaultTitle      = "Professional"
)

var titleTerm = regexp.MustCompile(`[A-Za-z]+`)

// Suggestions is the full LinkedIn content bundle.
type Suggestions struct {
	Headline     []string `json:"headline"`
	Summary      string   `json:"summary"`
	Skills       []string `json:"skills"`
	Keywords     []string `json:"keywords"`
	AboutSection string   `json:"about_section"`
}

// Generator builds LinkedIn suggestions from ResumeProfile values.
type Generator struct {
	tables *vocab.Tables
}

// New constructs a Generator.
func New(tables *vocab.Tables) *Generator {
	return &Generator{tables: tables}
}

// Generate produces headline, summary, skill, keyword and about-section
// suggestions for the profile.
func (g *Generator) Generate(p profile.ResumeProfile) Suggestions {
	return Suggestions{
		Headline:     g.headlines(p),
		Summary:      g.summary(p),
		Skills:       g.skills(p.Skills),
		Keywords:     g.keywords(p),
		AboutSection: g.aboutSection(p),
	}
}

func (g *Generator) headlines(p profile.ResumeProfile) []string {
	name := defaultTitle
	if p.PersonalInfo.Name != "" {
		name = strings.Fields(p.PersonalInfo.Name)[0]
	}
	topSkills := p.Skills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	firstSkill := "Technology"
	if len(topSkills) > 0 {
		firstSkill = topSkills[0]
	}
	twoSkills := topSkills
	if len(twoSkills) > 2 {
		twoSkills = twoSkills[:2]
	}

	var headlines []string
	if len(p.Experience) > 0 {
		headlines = append(headlines, fmt.Sprintf("%s | %s", p.Experience[0].Title, strings.Join(topSkills, ", ")))
	}
	headlines = append(headlines,
		fmt.Sprintf("%s | %s", defaultTitle, strings.Join(topSkills, ", ")),
		fmt.Sprintf("Experienced %s | %s", defaultTitle, strings.Join(twoSkills, ", ")),
		fmt.Sprintf("Passionate %s | Open to New Opportunities", defaultTitle),
		fmt.Sprintf("%s | %s | %s", name, defaultTitle, firstSkill),
	)
	if len(headlines) > maxHeadlines {
		headlines = headlines[:maxHeadlines]
	}
	return headlines
}

func (g *Generator) summary(p profile.ResumeProfile) string {
	parts := []string{"Results-driven professional with expertise in:"}

	topSkills := p.Skills
	if len(topSkills) > 5 {
		topSkills = topSkills[:5]
	}
	if len(topSkills) > 0 {
		parts = append(parts, "• "+strings.Join(topSkills, ", "))
	}

	if len(p.Experience) > 0 {
		parts = append(parts, "\nProfessional Experience:")
		jobs := p.Experience
		if len(jobs) > 2 {
			jobs = jobs[:2]
		}
		for _, job := range jobs {
			if job.Title != "" {
				parts = append(parts, "• "+job.Title)
			}
		}
	}

	parts = append(parts, "\nOpen to new opportunities and collaborations.")
	return strings.Join(parts, "\n")
}

// skills pads the profile's skills with commonly searched LinkedIn skills,
// capped at fifteen.
func (g *Generator) skills(skills []string) []string {
	out := append([]string(nil), skills...)
	for _, common := range g.tables.LinkedInSkills {
		if !containsFold(out, common) {
			out = append(out, common)
		}
	}
	if len(out) > maxLinkedInSkills {
		out = out[:maxLinkedInSkills]
	}
	return out
}

// keywords unions lowercased skills, job-title terms and fixed industry
// terms, sorted, capped at twenty.
func (g *Generator) keywords(p profile.ResumeProfile) []string {
	set := make(map[string]struct{})
	for _, skill := range p.Skills {
		set[strings.ToLower(skill)] = struct{}{}
	}
	for _, job := range p.Experience {
		for _, term := range titleTerm.FindAllString(job.Title, -1) {
			if len(term) > 3 {
				set[strings.ToLower(term)] = struct{}{}
			}
		}
	}
	for _, term := range g.tables.IndustryTerms {
		set[term] = struct{}{}
	}

	keywords := make([]string, 0, len(set))
	for kw := range set {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

func (g *Generator) aboutSection(p profile.ResumeProfile) string {
	return strings.Join([]string{
		"## Professional Summary",
		g.professionalSummary(p),
		"\n## Core Competencies",
		g.competencies(p.Skills),
		"\n## Career Highlights",
		g.careerHighlights(p.Experience),
	}, "\n")
}

func (g *Generator) professionalSummary(p profile.ResumeProfile) string {
	topSkills := p.Skills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	return fmt.Sprintf(
		"Seasoned professional with %d+ years of experience specializing in %s. "+
			"Proven track record of delivering innovative solutions and driving business growth through technology and strategic leadership.",
		estimateExperienceYears(p.Experience), strings.Join(topSkills, ", "))
}

// estimateExperienceYears guesses tenure from position count; date parsing is
// out of scope for this generator.
func estimateExperienceYears(jobs []profile.JobEntry) int {
	if len(jobs) == 0 {
		return 3
	}
	years := len(jobs) * 2
	if years < 2 {
		years = 2
	}
	if years > 30 {
		years = 30
	}
	return years
}

func (g *Generator) competencies(skills []string) string {
	if len(skills) == 0 {
		return "• Strategic Planning • Problem Solving • Team Leadership"
	}

	var technical, soft []string
	for _, skill := range skills {
		if g.isTechnical(skill) {
			technical = append(technical, skill)
		} else {
			soft = append(soft, skill)
		}
	}
	if len(technical) > 5 {
		technical = technical[:5]
	}
	if len(soft) > 3 {
		soft = soft[:3]
	}

	var lines []string
	if len(technical) > 0 {
		lines = append(lines, "Technical: "+strings.Join(technical, ", "))
	}
	if len(soft) > 0 {
		lines = append(lines, "Professional: "+strings.Join(soft, ", "))
	}
	return "• " + strings.Join(lines, "\n• ")
}

func (g *Generator) isTechnical(skill string) bool {
	lower := strings.ToLower(skill)
	for _, indicator := range g.tables.TechnicalIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func (g *Generator) careerHighlights(jobs []profile.JobEntry) string {
	if len(jobs) == 0 {
		return "• Successfully led multiple projects from conception to completion\n" +
			"• Consistently exceeded performance targets\n" +
			"• Recognized for innovative problem-solving abilities"
	}

	if len(jobs) > 3 {
		jobs = jobs[:3]
	}
	var highlights []string
	for _, job := range jobs {
		title := job.Title
		if title == "" {
			title = defaultTitle
		}
		highlights = append(highlights, fmt.Sprintf("• %s: Delivered significant results through strategic initiatives and effective execution", title))
	}
	return strings.Join(highlights, "\n")
}

func containsFold(list []string, target string) bool {
	for _, item := range list {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
