package optimizations

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-optimizer/internal/documents"
	"resume-optimizer/internal/nlp"
	"resume-optimizer/internal/optimize"
	"resume-optimizer/internal/parser"
	"resume-optimizer/internal/render"
	"resume-optimizer/internal/shared/metrics"
	"resume-optimizer/internal/shared/storage/object"
	"resume-optimizer/internal/shared/telemetry"
	"resume-optimizer/internal/vocab"
)

const (
	optimizedScope = "optimized"

	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Service rewrites a parsed resume for a target job description and renders
// downloadable DOCX and text artifacts.
type Service struct {
	Repo      Repo
	Documents *documents.Service
	Store     object.ObjectStore

	parser   *parser.Parser
	rewriter *optimize.Rewriter
}

// NewService wires the optimization pipeline around a shared vocabulary.
func NewService(repo Repo, docs *documents.Service, store object.ObjectStore) *Service {
	tables := vocab.Default()
	return &Service{
		Repo:      repo,
		Documents: docs,
		Store:     store,
		parser:    parser.New(nlp.NewRuleTagger(), tables),
		rewriter:  optimize.NewRewriter(tables),
	}
}

// Optimize rewrites the document's resume, renders artifacts, and records the
// optimization.
func (s *Service) Optimize(ctx context.Context, documentID, jobDescription, region string) (Optimization, error) {
	if documentID == "" {
		return Optimization{}, errors.New("document id is required")
	}

	metrics.IncOptimizationStarted()
	started := time.Now()

	text, err := s.Documents.ExtractedText(ctx, documentID)
	if err != nil {
		metrics.IncOptimizationFailed()
		return Optimization{}, err
	}

	parsed := s.parser.Parse(text)
	optimized := s.rewriter.OptimizeProfile(parsed, jobDescription, region)

	docxBytes, err := render.RenderDocx(&optimized)
	if err != nil {
		metrics.IncOptimizationFailed()
		return Optimization{}, err
	}
	textOut := render.RenderText(&optimized)

	id := uuid.NewString()
	docxKey := optimizedScope + "/" + id + ".docx"
	textKey := optimizedScope + "/" + id + ".txt"

	if _, err := s.Store.SaveWithKey(ctx, docxKey, mimeDOCX, bytes.NewReader(docxBytes)); err != nil {
		metrics.IncOptimizationFailed()
		return Optimization{}, err
	}
	if _, err := s.Store.SaveWithKey(ctx, textKey, "text/plain; charset=utf-8", strings.NewReader(textOut)); err != nil {
		metrics.IncOptimizationFailed()
		return Optimization{}, err
	}

	opt := Optimization{
		ID:             id,
		DocumentID:     documentID,
		JobDescription: jobDescription,
		DocxKey:        docxKey,
		TextKey:        textKey,
		Profile:        optimized,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, opt); err != nil {
		metrics.IncOptimizationFailed()
		return Optimization{}, err
	}

	durationMs := float64(time.Since(started).Microseconds()) / 1000.0
	metrics.IncOptimizationCompleted()
	metrics.ObserveOptimizationDurationMs(durationMs)
	telemetry.Info("optimization.complete", map[string]any{
		"optimization_id": opt.ID,
		"document_id":     documentID,
		"duration_ms":     durationMs,
	})

	return opt, nil
}

// Get returns an optimization by ID.
func (s *Service) Get(ctx context.Context, optimizationID string) (Optimization, error) {
	if optimizationID == "" {
		return Optimization{}, errors.New("optimization id is required")
	}
	return s.Repo.GetByID(ctx, optimizationID)
}

// OpenDocx opens the rendered DOCX artifact for download.
func (s *Service) OpenDocx(ctx context.Context, optimizationID string) (Optimization, []byte, error) {
	opt, err := s.Get(ctx, optimizationID)
	if err != nil {
		return Optimization{}, nil, err
	}
	body, err := s.Store.Open(ctx, opt.DocxKey)
	if err != nil {
		return Optimization{}, nil, err
	}
	defer body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return Optimization{}, nil, err
	}
	return opt, buf.Bytes(), nil
}
