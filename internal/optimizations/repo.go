package optimizations

import "context"

// Repo defines persistence operations for optimizations.
type Repo interface {
	Create(ctx context.Context, opt Optimization) error
	GetByID(ctx context.Context, optimizationID string) (Optimization, error)
}
