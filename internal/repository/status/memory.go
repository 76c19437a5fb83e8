package status

import (
	"context"
	"sync"

	"github.com/oshokin/drivesafe/internal/domain/speed"
)

// Repository defines access to the session status.
type Repository interface {
	Current(ctx context.Context) *speed.Status
	Update(ctx context.Context, status *speed.Status) error
}

// MemoryRepository keeps the session status in process memory.
type MemoryRepository struct {
	// current is the most recently stored status.
	current *speed.Status
	// mu protects concurrent access to the status.
	mu sync.RWMutex
}

// NewMemoryRepository creates a repository seeded with the provided status.
func NewMemoryRepository(initial *speed.Status) *MemoryRepository {
	return &MemoryRepository{
		current: initial.Clone(),
	}
}

// Current returns a copy of the stored status.
func (r *MemoryRepository) Current(_ context.Context) *speed.Status {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.current.Clone()
}

// Update replaces the stored status.
func (r *MemoryRepository) Update(_ context.Context, status *speed.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = status.Clone()

	return nil
}
