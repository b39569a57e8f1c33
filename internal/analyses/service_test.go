package analyses

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"resume-optimizer/internal/documents"
	"resume-optimizer/internal/shared/storage/object/local"
)

func newTestService(t *testing.T) (*Service, *documents.Service) {
	t.Helper()
	docs := &documents.Service{
		Store: local.New(t.TempDir()),
		Repo:  documents.NewMemoryRepo(),
	}
	return NewService(NewMemoryRepo(), docs, "heuristic:v1"), docs
}

func uploadSample(t *testing.T, docs *documents.Service) documents.Document {
	t.Helper()
	data := docxFixture(t, sampleResumeLines())
	doc, err := docs.Upload(context.Background(), "resume.docx", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	return doc
}

func TestAnalyzeProducesFullResult(t *testing.T) {
	svc, docs := newTestService(t)
	doc := uploadSample(t, docs)
	ctx := context.Background()

	analysis, err := svc.Analyze(ctx, doc.ID, "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.TotalScore < 0 || analysis.TotalScore > 100 {
		t.Fatalf("total score out of range: %v", analysis.TotalScore)
	}
	if analysis.Version != "heuristic:v1" {
		t.Fatalf("unexpected version: %s", analysis.Version)
	}

	categories := analysis.Result.Score.Categories
	for _, name := range []string{"Skills Match", "Keywords", "Formatting", "Readability", "Grammar"} {
		if _, ok := categories[name]; !ok {
			t.Fatalf("missing category %q", name)
		}
	}

	p := analysis.Result.Profile
	if p.PersonalInfo.Email != "jane.doe@example.com" {
		t.Fatalf("unexpected email: %q", p.PersonalInfo.Email)
	}
	if p.PersonalInfo.Phone != "555-123-4567" {
		t.Fatalf("unexpected phone: %q", p.PersonalInfo.Phone)
	}
	if len(p.Skills) == 0 {
		t.Fatal("expected parsed skills")
	}

	if len(analysis.Result.LinkedIn.Headline) == 0 {
		t.Fatal("expected linkedin headline suggestions")
	}
	if analysis.Result.LinkedIn.Summary == "" {
		t.Fatal("expected linkedin summary")
	}

	stored, err := svc.Get(ctx, analysis.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.TotalScore != analysis.TotalScore {
		t.Fatalf("persisted score mismatch: %v vs %v", stored.TotalScore, analysis.TotalScore)
	}
}

func TestAnalyzeWithJobDescription(t *testing.T) {
	svc, docs := newTestService(t)
	doc := uploadSample(t, docs)
	ctx := context.Background()

	analysis, err := svc.Analyze(ctx, doc.ID, "Looking for python aws and docker experience")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.JobDescription == "" {
		t.Fatal("expected job description on analysis")
	}
	skillsMatch, ok := analysis.Result.Score.Categories["Skills Match"]
	if !ok {
		t.Fatal("missing Skills Match category")
	}
	if skillsMatch.Score <= 0 {
		t.Fatalf("expected positive skills match against matching jd, got %v", skillsMatch.Score)
	}
}

func TestAnalyzeSuggestsWeakPhraseRewrite(t *testing.T) {
	svc, docs := newTestService(t)
	doc := uploadSample(t, docs)

	analysis, err := svc.Analyze(context.Background(), doc.ID, "")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var found bool
	for _, job := range analysis.Result.Suggestions.Experience {
		for _, s := range job.Suggestions {
			if s.Improved != "" && s.Improved != s.Original {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected a rewritten suggestion for the weak-phrase bullet")
	}
}

func TestAnalyzeUnknownDocument(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Analyze(context.Background(), "missing", "")
	if !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected documents.ErrNotFound, got %v", err)
	}
}

func TestListByDocumentNewestFirst(t *testing.T) {
	svc, docs := newTestService(t)
	doc := uploadSample(t, docs)
	ctx := context.Background()

	if _, err := svc.Analyze(ctx, doc.ID, ""); err != nil {
		t.Fatalf("Analyze first: %v", err)
	}
	if _, err := svc.Analyze(ctx, doc.ID, "python"); err != nil {
		t.Fatalf("Analyze second: %v", err)
	}

	out, err := svc.ListByDocument(ctx, doc.ID, 10)
	if err != nil {
		t.Fatalf("ListByDocument: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(out))
	}
	if out[0].CreatedAt.Before(out[1].CreatedAt) {
		t.Fatal("expected newest analysis first")
	}
}
