package optimizations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new optimization.
func (r *PGRepo) Create(ctx context.Context, opt Optimization) error {
	const query = `
INSERT INTO optimizations (
    id,
    document_id,
    job_description,
    docx_key,
    text_key,
    profile,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	profileJSON, err := json.Marshal(opt.Profile)
	if err != nil {
		return fmt.Errorf("marshal optimized profile: %w", err)
	}

	var jobDescription sql.NullString
	if opt.JobDescription != "" {
		jobDescription = sql.NullString{String: opt.JobDescription, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		opt.ID,
		opt.DocumentID,
		jobDescription,
		opt.DocxKey,
		opt.TextKey,
		profileJSON,
		opt.CreatedAt,
	)
	return err
}

// GetByID fetches an optimization by ID.
func (r *PGRepo) GetByID(ctx context.Context, optimizationID string) (Optimization, error) {
	const query = `
SELECT id, document_id, job_description, docx_key, text_key, profile, created_at
FROM optimizations
WHERE id = $1
LIMIT 1`

	var opt Optimization
	var jobDescription sql.NullString
	var profileJSON []byte
	err := r.DB.QueryRowContext(ctx, query, optimizationID).Scan(
		&opt.ID,
		&opt.DocumentID,
		&jobDescription,
		&opt.DocxKey,
		&opt.TextKey,
		&profileJSON,
		&opt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Optimization{}, ErrNotFound
		}
		return Optimization{}, err
	}
	if jobDescription.Valid {
		opt.JobDescription = jobDescription.String
	}
	if len(profileJSON) > 0 {
		if err := json.Unmarshal(profileJSON, &opt.Profile); err != nil {
			return Optimization{}, fmt.Errorf("unmarshal optimized profile: %w", err)
		}
	}
	return opt, nil
}

var _ Repo = (*PGRepo)(nil)
