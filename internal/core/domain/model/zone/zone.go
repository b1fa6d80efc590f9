// Package zone contains the Zone entity: a named delivery area with an
// associated shipping cost. Zones have an independent lifecycle and are
// referenced, never owned, by client addresses and orders. Orders stamp a
// snapshot of the zone name and cost at creation time, so later cost edits
// never change historical orders.
package zone

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	// ErrZoneIsNotConstructed is returned when using an improperly initialized Zone.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")
	// ErrNameIsRequired is returned when attempting to create a zone without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Zone is a delivery area identified by name within the store.
// Its cost is the shipping charge shown for orders delivered there.
type Zone struct {
	id   kernel.UUID
	name string
	cost kernel.Money

	guard guard.ConstructorGuard
}

// NewZone creates a Zone with a non-empty name and a non-negative cost.
func NewZone(id kernel.UUID, name string, cost kernel.Money) (*Zone, error) {
	z := &Zone{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		z.setID(id),
		z.setName(name),
		z.setCost(cost),
	); err != nil {
		return nil, err
	}

	return z, nil
}

// RestoreZone reconstructs a Zone from persistent storage.
func RestoreZone(id kernel.UUID, name string, cost kernel.Money) (*Zone, error) {
	return NewZone(id, name, cost)
}

// Validate checks the Zone was created via NewZone.
func (z *Zone) Validate() error {
	if z == nil {
		return ErrZoneIsNotConstructed
	}
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's name.
func (z *Zone) Name() string {
	return z.name
}

// Cost returns the current shipping cost for the zone.
func (z *Zone) Cost() kernel.Money {
	return z.cost
}

// ChangeCost updates the zone's shipping cost. Existing orders keep their
// snapshotted cost.
func (z *Zone) ChangeCost(cost kernel.Money) error {
	return z.setCost(cost)
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	z.name = name
	return nil
}

func (z *Zone) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	z.cost = cost
	return nil
}
