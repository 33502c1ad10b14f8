package repository

import (
	"context"
	"sync"

	"github.com/condoportal/backend/internal/model"
)

// MemoryMaintenanceRepository keeps maintenance items in process memory.
// Contents reset whenever the process restarts.
type MemoryMaintenanceRepository struct {
	mu    sync.RWMutex
	items []model.MaintenanceItem
}

// NewMemoryMaintenanceRepository creates a store holding seed, in order.
func NewMemoryMaintenanceRepository(seed []model.MaintenanceItem) *MemoryMaintenanceRepository {
	items := make([]model.MaintenanceItem, len(seed))
	copy(items, seed)
	return &MemoryMaintenanceRepository{items: items}
}

// List returns a snapshot copy of all items.
func (r *MemoryMaintenanceRepository) List(ctx context.Context) ([]model.MaintenanceItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.MaintenanceItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Append adds item at the end of the list.
func (r *MemoryMaintenanceRepository) Append(ctx context.Context, item model.MaintenanceItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()
	return nil
}

// Len returns the current number of items.
func (r *MemoryMaintenanceRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
