package ports

import (
	"context"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write carries an optimistic version check: it succeeds only when
	// the stored version matches the aggregate's loaded version, and fails
	// with a VersionIsInvalidError when a concurrent update won the race.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its line items from storage.
	// Callers must first check the order is cancelled via EnsureDeletable.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllInIssuedStatus retrieves all orders waiting for a driver.
	// Used for the dispatch queue.
	GetAllInIssuedStatus(ctx context.Context) ([]*order.Order, error)
}
