package analyses

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/scoring"
)

func sampleAnalysis() Analysis {
	return Analysis{
		ID:             "analysis-1",
		DocumentID:     "doc-1",
		Version:        "heuristic:v1",
		JobDescription: "python aws",
		TotalScore:     72.5,
		Result: Result{
			Profile: profile.ResumeProfile{
				Skills: []string{"Python", "Aws"},
			},
			Score: scoring.ScoreBreakdown{
				TotalScore: 72.5,
				Categories: map[string]scoring.CategoryScore{
					"Skills Match": {Score: 30, MaxScore: 40},
				},
			},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestPGRepoCreateStoresResultJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := sampleAnalysis()

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.DocumentID,
			analysis.Version,
			analysis.JobDescription,
			analysis.TotalScore,
			sqlmock.AnyArg(), // result JSON
			analysis.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRoundTripsResult(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := sampleAnalysis()
	resultJSON, err := json.Marshal(analysis.Result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"id", "document_id", "version", "job_description", "total_score", "result", "created_at",
	}).AddRow(
		analysis.ID, analysis.DocumentID, analysis.Version, analysis.JobDescription,
		analysis.TotalScore, resultJSON, analysis.CreatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs(analysis.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), analysis.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalScore != analysis.TotalScore {
		t.Fatalf("unexpected total score: %v", got.TotalScore)
	}
	if len(got.Result.Profile.Skills) != 2 {
		t.Fatalf("unexpected skills: %v", got.Result.Profile.Skills)
	}
	if got.Result.Score.Categories["Skills Match"].Score != 30 {
		t.Fatalf("unexpected category score: %v", got.Result.Score.Categories["Skills Match"].Score)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "document_id", "version", "job_description", "total_score", "result", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
