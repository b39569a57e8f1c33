package analyses

import (
	"time"

	"resume-optimizer/internal/linkedin"
	"resume-optimizer/internal/optimize"
	"resume-optimizer/internal/profile"
	"resume-optimizer/internal/scoring"
)

// Analysis is one scored evaluation of a document, optionally against a job
// description.
type Analysis struct {
	ID             string    `json:"id"`
	DocumentID     string    `json:"documentId"`
	Version        string    `json:"version"`
	JobDescription string    `json:"jobDescription,omitempty"`
	TotalScore     float64   `json:"totalScore"`
	Result         Result    `json:"result"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Result bundles everything produced by one analysis pass.
type Result struct {
	Profile     profile.ResumeProfile  `json:"profile"`
	Score       scoring.ScoreBreakdown `json:"score"`
	Suggestions optimize.Bundle        `json:"suggestions"`
	LinkedIn    linkedin.Suggestions   `json:"linkedin"`
}
