package optimizations

import (
	"time"

	"resume-optimizer/internal/profile"
)

// Optimization records one rewritten resume and where its rendered artifacts
// live in object storage.
type Optimization struct {
	ID             string                `json:"id"`
	DocumentID     string                `json:"documentId"`
	JobDescription string                `json:"jobDescription,omitempty"`
	DocxKey        string                `json:"-"`
	TextKey        string                `json:"-"`
	Profile        profile.ResumeProfile `json:"profile"`
	CreatedAt      time.Time             `json:"createdAt"`
}
