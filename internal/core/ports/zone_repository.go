package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for shipping zones.
type ZoneRepository interface {
	// Add persists a new zone.
	Add(ctx context.Context, aggregate *zone.Zone) error

	// Update persists changes to an existing zone, such as a cost edit.
	// Already-created orders keep their snapshotted cost.
	Update(ctx context.Context, aggregate *zone.Zone) error

	// Get retrieves a zone by its unique identifier.
	// Must return the current cost so order creation can snapshot it.
	Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)

	// GetAll retrieves every zone, ordered by name.
	GetAll(ctx context.Context) ([]*zone.Zone, error)
}
