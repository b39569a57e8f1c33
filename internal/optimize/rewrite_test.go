package optimize

import (
	"reflect"
	"strings"
	"testing"

	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/vocab"
)

func TestImproveBulletStripsWeakOpener(t *testing.T) {
	r := NewRewriter(vocab.Default())

	got := r.ImproveBullet("Responsible for managing a team")
	want := "Managed managing a team" + AdvisorySuffix
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestImproveBulletKeepsStrongBullet(t *testing.T) {
	r := NewRewriter(vocab.Default())

	got := r.ImproveBullet("Increased revenue by 20%")
	if got != "Increased revenue by 20%" {
		t.Fatalf("expected bullet unchanged, got %q", got)
	}
}

func TestImproveBulletContextVerbRouting(t *testing.T) {
	r := NewRewriter(vocab.Default())

	cases := []struct {
		bullet string
		verb   string
	}{
		{"worked on deploying the service", "Implemented"},
		{"helped with researching user churn", "Analyzed"},
		{"duties included building dashboards", "Developed"},
	}
	for _, tc := range cases {
		got := r.ImproveBullet(tc.bullet)
		if !strings.HasPrefix(got, tc.verb+" ") {
			t.Fatalf("bullet %q: expected prefix %q, got %q", tc.bullet, tc.verb, got)
		}
	}
}

func TestImproveBulletStable(t *testing.T) {
	r := NewRewriter(vocab.Default())

	once := r.ImproveBullet("responsible for the launch checklist")
	twice := r.ImproveBullet(once)
	if strings.Count(twice, "Managed") > strings.Count(once, "Managed") {
		t.Fatalf("second pass prepended another verb: %q -> %q", once, twice)
	}
}

func TestOptimizeSummaryFallback(t *testing.T) {
	r := NewRewriter(vocab.Default())

	got := r.OptimizeSummary("   ", "")
	if got == "" || !strings.Contains(got, "Experienced professional") {
		t.Fatalf("expected fallback summary, got %q", got)
	}
}

func TestOptimizeSummaryPrependsVerb(t *testing.T) {
	r := NewRewriter(vocab.Default())

	got := r.OptimizeSummary("Software engineer with ten years in payments", "")
	if !strings.HasPrefix(got, "Accomplished software engineer") {
		t.Fatalf("unexpected summary: %q", got)
	}

	kept := r.OptimizeSummary("Delivered large migrations across three teams", "")
	if !strings.HasPrefix(kept, "Delivered") {
		t.Fatalf("action-verb summary should be kept: %q", kept)
	}
}

func TestEnhanceSkillsAddsMissingAndDeduplicates(t *testing.T) {
	r := NewRewriter(vocab.Default())

	got := r.EnhanceSkills([]string{"Python", "PYTHON"}, "needs java and python")
	want := []string{"Python", "Java"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEnhanceSkillsCapsAdditionsAtFive(t *testing.T) {
	r := NewRewriter(vocab.Default())

	jd := "python java sql react aws docker kubernetes terraform"
	got := r.EnhanceSkills(nil, jd)
	if len(got) != 5 {
		t.Fatalf("expected five additions, got %v", got)
	}
}

func TestOptimizeProfileRegions(t *testing.T) {
	r := NewRewriter(vocab.Default())
	p := profile.ResumeProfile{Summary: "Delivered projects"}

	uk := r.OptimizeProfile(p, "", "UK")
	if uk.RegionalFormat == nil || uk.RegionalFormat.Spelling != "colour" {
		t.Fatalf("unexpected UK format: %+v", uk.RegionalFormat)
	}
	if uk.RegionalFormat.DateFormat != "DD/MM/YYYY" {
		t.Fatalf("unexpected UK date format: %+v", uk.RegionalFormat)
	}

	unknown := r.OptimizeProfile(p, "", "Mars")
	if unknown.RegionalFormat == nil || unknown.RegionalFormat.Spelling != "color" {
		t.Fatalf("expected US fallback, got %+v", unknown.RegionalFormat)
	}
}

func TestOptimizeProfileStripsAdvisorySuffix(t *testing.T) {
	r := NewRewriter(vocab.Default())
	p := profile.ResumeProfile{
		Experience: []profile.JobEntry{{
			Title:       "Senior Engineer",
			Description: []string{"responsible for the hiring pipeline"},
		}},
	}

	out := r.OptimizeProfile(p, "", "US")
	for _, bullet := range out.Experience[0].Description {
		if strings.Contains(bullet, AdvisorySuffix) {
			t.Fatalf("advisory suffix leaked into persisted bullet: %q", bullet)
		}
		if strings.Contains(strings.ToLower(bullet), "responsible for") {
			t.Fatalf("weak phrase survived: %q", bullet)
		}
	}
}

func TestOptimizeProfileLeavesInputUntouched(t *testing.T) {
	r := NewRewriter(vocab.Default())
	p := profile.ResumeProfile{
		Summary: "Software engineer",
		Skills:  []string{"Python"},
		Experience: []profile.JobEntry{{
			Description: []string{"worked on the billing system"},
		}},
	}

	_ = r.OptimizeProfile(p, "needs java", "US")

	if p.Summary != "Software engineer" {
		t.Fatalf("summary mutated: %q", p.Summary)
	}
	if len(p.Skills) != 1 || p.Skills[0] != "Python" {
		t.Fatalf("skills mutated: %v", p.Skills)
	}
	if p.Experience[0].Description[0] != "worked on the billing system" {
		t.Fatalf("bullet mutated: %v", p.Experience[0].Description)
	}
}
