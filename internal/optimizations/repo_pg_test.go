package optimizations

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-optimizer/internal/profile"
)

func sampleOptimization() Optimization {
	return Optimization{
		ID:             "opt-1",
		DocumentID:     "doc-1",
		JobDescription: "python aws",
		DocxKey:        "optimized/opt-1.docx",
		TextKey:        "optimized/opt-1.txt",
		Profile: profile.ResumeProfile{
			Summary: "Delivered large migrations",
			Skills:  []string{"Python", "Aws"},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestPGRepoCreateStoresProfileJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	opt := sampleOptimization()

	mock.ExpectExec("INSERT INTO optimizations").
		WithArgs(
			opt.ID,
			opt.DocumentID,
			opt.JobDescription,
			opt.DocxKey,
			opt.TextKey,
			sqlmock.AnyArg(), // profile JSON
			opt.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), opt); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRoundTripsProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	opt := sampleOptimization()
	profileJSON, err := json.Marshal(opt.Profile)
	if err != nil {
		t.Fatalf("marshal profile: %v", err)
	}

	rows := sqlmock.NewRows([]string{
		"id", "document_id", "job_description", "docx_key", "text_key", "profile", "created_at",
	}).AddRow(
		opt.ID, opt.DocumentID, opt.JobDescription, opt.DocxKey, opt.TextKey,
		profileJSON, opt.CreatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM optimizations").
		WithArgs(opt.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), opt.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.DocxKey != opt.DocxKey {
		t.Fatalf("unexpected docx key: %q", got.DocxKey)
	}
	if got.Profile.Summary != opt.Profile.Summary {
		t.Fatalf("unexpected summary: %q", got.Profile.Summary)
	}
	if len(got.Profile.Skills) != 2 {
		t.Fatalf("unexpected skills: %v", got.Profile.Skills)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM optimizations").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "document_id", "job_description", "docx_key", "text_key", "profile", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
