package optimizations

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Optimization
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Optimization),
	}
}

// Create stores an optimization.
func (r *MemoryRepo) Create(ctx context.Context, opt Optimization) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[opt.ID] = opt
	return nil
}

// GetByID returns an optimization by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, optimizationID string) (Optimization, error) {
	if err := ctx.Err(); err != nil {
		return Optimization{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	opt, ok := r.data[optimizationID]
	if !ok {
		return Optimization{}, ErrNotFound
	}
	return opt, nil
}

var _ Repo = (*MemoryRepo)(nil)
