package ports

import (
	"context"

	"pedidos/internal/core/domain/model/driver"
	"pedidos/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for drivers.
// Drivers are identified externally by phone number.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by phone number.
	Get(ctx context.Context, phone kernel.Phone) (*driver.Driver, error)

	// GetAllActive retrieves every driver that is not archived.
	// Used to offer assignable drivers for dispatching.
	GetAllActive(ctx context.Context) ([]*driver.Driver, error)
}
