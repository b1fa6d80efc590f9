package client

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// maxStreetLength bounds the free-text street address.
const maxStreetLength = 255

var (
	// ErrAddressIsNotConstructed is returned when using an improperly initialized Address.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")
	// ErrStreetIsRequired is returned when the street text is empty.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
)

// Address is a delivery address owned by a Client. It pairs free-text street
// directions with the Zone the address falls in. Addresses are created and
// removed only through their owning Client; a Zone cannot be deleted while an
// Address still references it.
type Address struct {
	id     kernel.UUID
	street string
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddress creates an Address with non-empty, bounded street text and a
// reference to an existing Zone.
func NewAddress(id kernel.UUID, street string, zoneID kernel.UUID) (*Address, error) {
	a := &Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setID(id),
		a.setStreet(street),
		a.setZoneID(zoneID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an Address from persistent storage.
func RestoreAddress(id kernel.UUID, street string, zoneID kernel.UUID) (*Address, error) {
	return NewAddress(id, street, zoneID)
}

// Validate checks the Address was created via NewAddress.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// Street returns the free-text street address.
func (a *Address) Street() string {
	return a.street
}

// ZoneID returns the referenced zone's identifier.
func (a *Address) ZoneID() kernel.UUID {
	return a.zoneID
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	if len(street) > maxStreetLength {
		return errs.NewValueIsOutOfRangeError("street", len(street), 1, maxStreetLength)
	}
	a.street = street
	return nil
}

func (a *Address) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	a.zoneID = zoneID
	return nil
}
