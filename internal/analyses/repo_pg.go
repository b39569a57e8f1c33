package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The full analysis result is kept as
// a JSONB column.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id,
    document_id,
    version,
    job_description,
    total_score,
    result,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	resultJSON, err := json.Marshal(analysis.Result)
	if err != nil {
		return fmt.Errorf("marshal analysis result: %w", err)
	}

	var jobDescription sql.NullString
	if analysis.JobDescription != "" {
		jobDescription = sql.NullString{String: analysis.JobDescription, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.DocumentID,
		analysis.Version,
		jobDescription,
		analysis.TotalScore,
		resultJSON,
		analysis.CreatedAt,
	)
	return err
}

// GetByID fetches an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = `
SELECT id, document_id, version, job_description, total_score, result, created_at
FROM analyses
WHERE id = $1
LIMIT 1`
	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, analysisID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListByDocument returns analyses for a document, newest first.
func (r *PGRepo) ListByDocument(ctx context.Context, documentID string, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT id, document_id, version, job_description, total_score, result, created_at
FROM analyses
WHERE document_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, documentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var analysis Analysis
	var jobDescription sql.NullString
	var resultJSON []byte
	if err := row.Scan(
		&analysis.ID,
		&analysis.DocumentID,
		&analysis.Version,
		&jobDescription,
		&analysis.TotalScore,
		&resultJSON,
		&analysis.CreatedAt,
	); err != nil {
		return Analysis{}, err
	}
	if jobDescription.Valid {
		analysis.JobDescription = jobDescription.String
	}
	if len(resultJSON) > 0 {
		if err := json.Unmarshal(resultJSON, &analysis.Result); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal analysis result: %w", err)
		}
	}
	return analysis, nil
}

var _ Repo = (*PGRepo)(nil)
