package repository

import (
	"context"

	"github.com/condoportal/backend/internal/model"
)

// MaintenanceRepository owns the upcoming maintenance list.
// Items are only ever appended; List returns them in insertion order.
type MaintenanceRepository interface {
	List(ctx context.Context) ([]model.MaintenanceItem, error)
	Append(ctx context.Context, item model.MaintenanceItem) error
}
