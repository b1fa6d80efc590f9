// Package ports defines repository interfaces for the order-taking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
// Clients are identified externally by phone number; the repository owns the
// client's address collection as part of the aggregate.
type ClientRepository interface {
	// Add persists a new client aggregate, including its addresses.
	// The client must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	// New addresses appended to the aggregate are inserted alongside.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client aggregate by phone number.
	// Returns the complete client with all registered addresses.
	Get(ctx context.Context, phone kernel.Phone) (*client.Client, error)

	// Exists reports whether a client with the given phone is persisted.
	// Used during order creation to decide between attach and inline create.
	Exists(ctx context.Context, phone kernel.Phone) (bool, error)
}
