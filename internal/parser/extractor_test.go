package parser

import (
	"reflect"
	"testing"

	"resume-optimizer/internal/nlp"
	"resume-optimizer/internal/vocab"
)

func TestParseJobsStateMachine(t *testing.T) {
	section := "Experience\n" +
		"Senior Software Engineer\n" +
		"- built the billing pipeline for retail\n" +
		"- shipped the checkout rewrite\n" +
		"Engineering Manager\n" +
		"- ran sprint planning for two squads"

	jobs := ParseJobs(section)
	if len(jobs) != 2 {
		t.Fatalf("expected two jobs, got %d: %+v", len(jobs), jobs)
	}
	if jobs[0].Title != "Senior Software Engineer" {
		t.Fatalf("unexpected first title: %q", jobs[0].Title)
	}
	if len(jobs[0].Description) != 2 {
		t.Fatalf("expected two description lines, got %v", jobs[0].Description)
	}
	if jobs[1].Title != "Engineering Manager" {
		t.Fatalf("unexpected second title: %q", jobs[1].Title)
	}
}

func TestParseJobsIgnoresLeadingProse(t *testing.T) {
	// Detail lines before the first title line are dropped.
	jobs := ParseJobs("worked at various companies\nSenior Analyst\n- modeled churn for the retention team")
	if len(jobs) != 1 {
		t.Fatalf("expected one job, got %+v", jobs)
	}
	if len(jobs[0].Description) != 1 {
		t.Fatalf("expected one description line, got %v", jobs[0].Description)
	}
}

func TestParseJobsTitleDates(t *testing.T) {
	jobs := ParseJobs("Senior Engineer Jan 2020 - Mar 2022")
	if len(jobs) != 1 {
		t.Fatalf("expected one job, got %+v", jobs)
	}
	if len(jobs[0].Dates) == 0 {
		t.Fatalf("expected dates on title line, got %+v", jobs[0])
	}
}

func TestParseEducation(t *testing.T) {
	section := "Education\n" +
		"Bachelor of Science in Computer Science\n" +
		"State University\n" +
		"Master of Science\n" +
		"Tech Institute"

	entries := ParseEducation(section)
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %+v", entries)
	}
	if entries[0].Degree != "Bachelor of Science in Computer Science" {
		t.Fatalf("unexpected degree: %q", entries[0].Degree)
	}
	if len(entries[0].Details) != 1 || entries[0].Details[0] != "State University" {
		t.Fatalf("unexpected details: %v", entries[0].Details)
	}
}

func TestParseProjects(t *testing.T) {
	section := "Projects\n" +
		"Inventory Tracker\n" +
		"- syncs stock counts across three warehouses\n" +
		"Weather Dashboard\n" +
		"- renders hourly forecasts from public feeds"

	projects := ParseProjects(section)
	if len(projects) != 3 {
		t.Fatalf("expected three projects (header over-segments), got %+v", projects)
	}
	if projects[1].Name != "Inventory Tracker" {
		t.Fatalf("unexpected project name: %q", projects[1].Name)
	}
	if len(projects[1].Description) != 1 {
		t.Fatalf("unexpected description: %v", projects[1].Description)
	}
}

func TestExtractDatesKeepsDuplicates(t *testing.T) {
	dates := ExtractDates("Jan 2020 - Mar 2021")
	// month-year hits first, then the bare years match again
	want := []string{"Jan 2020", "Mar 2021", "2020", "2021"}
	if !reflect.DeepEqual(dates, want) {
		t.Fatalf("expected %v, got %v", want, dates)
	}
}

func TestExtractSkillsUnionsSources(t *testing.T) {
	tables := vocab.Default()
	entities := []nlp.Entity{
		{Text: "PostgreSQL", Label: nlp.LabelProduct},
		{Text: "Jane Doe", Label: nlp.LabelPerson},
	}

	skills := ExtractSkills("python and docker work", entities, tables)
	want := []string{"Docker", "PostgreSQL", "Python"}
	if !reflect.DeepEqual(skills, want) {
		t.Fatalf("expected %v, got %v", want, skills)
	}
}

func TestExtractPersonalInfo(t *testing.T) {
	text := "Jane Doe\njane.doe@example.com\n(555) 123-4567"
	entities := []nlp.Entity{{Text: "Jane Doe", Label: nlp.LabelPerson}}

	info := ExtractPersonalInfo(text, entities)
	if info.Name != "Jane Doe" {
		t.Fatalf("unexpected name: %q", info.Name)
	}
	if info.Email != "jane.doe@example.com" {
		t.Fatalf("unexpected email: %q", info.Email)
	}
	if info.Phone != "(555) 123-4567" {
		t.Fatalf("unexpected phone: %q", info.Phone)
	}
}

func TestExtractPersonalInfoEmptyWhenAbsent(t *testing.T) {
	info := ExtractPersonalInfo("no contact details here", nil)
	if info.Name != "" || info.Email != "" || info.Phone != "" {
		t.Fatalf("expected empty info, got %+v", info)
	}
}
