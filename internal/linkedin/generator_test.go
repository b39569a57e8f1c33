package linkedin

import (
	"sort"
	"strings"
	"testing"

	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/vocab"
)

func sampleProfile() profile.ResumeProfile {
	return profile.ResumeProfile{
		PersonalInfo: profile.PersonalInfo{Name: "Jane Doe"},
		Skills:       []string{"Python", "Leadership"},
		Experience: []profile.JobEntry{
			{Title: "Senior Engineer"},
			{Title: "Engineer"},
		},
	}
}

func TestGenerateHeadlines(t *testing.T) {
	g := New(vocab.Default())

	s := g.Generate(sampleProfile())
	if len(s.Headline) == 0 || len(s.Headline) > 5 {
		t.Fatalf("expected 1-5 headlines, got %d", len(s.Headline))
	}
	if s.Headline[0] != "Senior Engineer | Python, Leadership" {
		t.Fatalf("unexpected first headline: %q", s.Headline[0])
	}
}

func TestGenerateHeadlinesWithoutExperience(t *testing.T) {
	g := New(vocab.Default())

	s := g.Generate(profile.ResumeProfile{})
	if len(s.Headline) == 0 {
		t.Fatalf("expected generic headlines, got none")
	}
	if !strings.Contains(s.Headline[0], "Professional") {
		t.Fatalf("unexpected headline: %q", s.Headline[0])
	}
}

func TestGenerateSkillsPadsWithoutDuplicates(t *testing.T) {
	g := New(vocab.Default())

	s := g.Generate(sampleProfile())
	if len(s.Skills) > 15 {
		t.Fatalf("skills over cap: %d", len(s.Skills))
	}
	count := 0
	for _, skill := range s.Skills {
		if strings.EqualFold(skill, "Leadership") {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected Leadership once, got %d in %v", count, s.Skills)
	}
	found := false
	for _, skill := range s.Skills {
		if skill == "Problem Solving" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected padded skill, got %v", s.Skills)
	}
}

func TestGenerateKeywordsSortedAndCapped(t *testing.T) {
	g := New(vocab.Default())

	s := g.Generate(sampleProfile())
	if len(s.Keywords) > 20 {
		t.Fatalf("keywords over cap: %d", len(s.Keywords))
	}
	if !sort.StringsAreSorted(s.Keywords) {
		t.Fatalf("keywords not sorted: %v", s.Keywords)
	}
	for _, want := range []string{"python", "senior", "engineer"} {
		found := false
		for _, kw := range s.Keywords {
			if kw == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected keyword %s, got %v", want, s.Keywords)
		}
	}
}

func TestGenerateAboutSection(t *testing.T) {
	g := New(vocab.Default())

	s := g.Generate(sampleProfile())
	for _, header := range []string{"## Professional Summary", "## Core Competencies", "## Career Highlights"} {
		if !strings.Contains(s.AboutSection, header) {
			t.Fatalf("about section missing %q:\n%s", header, s.AboutSection)
		}
	}
	if !strings.Contains(s.AboutSection, "Technical: Python") {
		t.Fatalf("expected Python under technical skills:\n%s", s.AboutSection)
	}
	if !strings.Contains(s.AboutSection, "Professional: Leadership") {
		t.Fatalf("expected Leadership under professional skills:\n%s", s.AboutSection)
	}
	if !strings.Contains(s.AboutSection, "4+ years") {
		t.Fatalf("expected tenure estimate from two positions:\n%s", s.AboutSection)
	}
}

func TestGenerateEmptyProfileHasDefaults(t *testing.T) {
	g := New(vocab.Default())

	s := g.Generate(profile.ResumeProfile{})
	if s.Summary == "" || s.AboutSection == "" {
		t.Fatalf("expected default content, got %+v", s)
	}
	if !strings.Contains(s.AboutSection, "Strategic Planning") {
		t.Fatalf("expected default competencies:\n%s", s.AboutSection)
	}
	if len(s.Keywords) == 0 {
		t.Fatalf("expected industry keywords, got none")
	}
}
