package analyses

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"resume-optimizer/internal/documents"
	"resume-optimizer/internal/linkedin"
	"resume-optimizer/internal/nlp"
	"resume-optimizer/internal/optimize"
	"resume-optimizer/internal/parser"
	"resume-optimizer/internal/scoring"
	"resume-optimizer/internal/shared/metrics"
	"resume-optimizer/internal/shared/telemetry"
	"resume-optimizer/internal/vocab"
)

// Service runs the full analysis pipeline synchronously: extract, parse,
// score, suggest, and persist.
type Service struct {
	Repo      Repo
	Documents *documents.Service
	Version   string

	parser    *parser.Parser
	scorer    *scoring.Scorer
	suggester *optimize.Suggester
	linkedin  *linkedin.Generator
}

// NewService wires the analysis pipeline around a shared vocabulary.
func NewService(repo Repo, docs *documents.Service, version string) *Service {
	tables := vocab.Default()
	return &Service{
		Repo:      repo,
		Documents: docs,
		Version:   version,
		parser:    parser.New(nlp.NewRuleTagger(), tables),
		scorer:    scoring.New(tables),
		suggester: optimize.NewSuggester(tables),
		linkedin:  linkedin.New(tables),
	}
}

// Analyze extracts the document text, runs the scoring pipeline against an
// optional job description, and persists the result.
func (s *Service) Analyze(ctx context.Context, documentID, jobDescription string) (Analysis, error) {
	if documentID == "" {
		return Analysis{}, errors.New("document id is required")
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	text, err := s.Documents.ExtractedText(ctx, documentID)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}

	parsed := s.parser.Parse(text)
	breakdown := s.scorer.Score(parsed, jobDescription)
	suggestions := s.suggester.Suggest(parsed, jobDescription)
	profileSuggestions := s.linkedin.Generate(parsed)

	analysis := Analysis{
		ID:             uuid.NewString(),
		DocumentID:     documentID,
		Version:        s.Version,
		JobDescription: jobDescription,
		TotalScore:     breakdown.TotalScore,
		Result: Result{
			Profile:     parsed,
			Score:       breakdown,
			Suggestions: suggestions,
			LinkedIn:    profileSuggestions,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}

	durationMs := float64(time.Since(started).Microseconds()) / 1000.0
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs)
	telemetry.Info("analysis.complete", map[string]any{
		"analysis_id": analysis.ID,
		"document_id": documentID,
		"total_score": analysis.TotalScore,
		"duration_ms": durationMs,
	})

	return analysis, nil
}

// Get returns an analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	if analysisID == "" {
		return Analysis{}, errors.New("analysis id is required")
	}
	return s.Repo.GetByID(ctx, analysisID)
}

// ListByDocument returns recent analyses for a document.
func (s *Service) ListByDocument(ctx context.Context, documentID string, limit int) ([]Analysis, error) {
	return s.Repo.ListByDocument(ctx, documentID, limit)
}
