package order

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

const (
	// maxDeliveryNameLength bounds the recipient name.
	maxDeliveryNameLength = 255
	// maxDeliveryStreetLength bounds the free-text delivery address.
	maxDeliveryStreetLength = 255
)

var (
	// ErrDeliveryTargetIsNotConstructed is returned when using an improperly initialized DeliveryTarget.
	ErrDeliveryTargetIsNotConstructed = errors.New("DeliveryTarget must be created via NewDeliveryTarget constructor")
	// ErrDeliveryNameIsRequired is returned when the recipient name is empty.
	ErrDeliveryNameIsRequired = errs.NewValueIsRequiredError("deliveryName")
	// ErrDeliveryStreetIsRequired is returned when the delivery address is empty.
	ErrDeliveryStreetIsRequired = errs.NewValueIsRequiredError("deliveryStreet")
	// ErrZoneNameIsRequired is returned when the zone name snapshot is empty.
	ErrZoneNameIsRequired = errs.NewValueIsRequiredError("zoneName")
)

// DeliveryTarget is where an order is delivered: recipient name, street text,
// the referenced zone, and a snapshot of the zone's name and cost taken at
// order creation. The snapshot keeps historical orders accurate when zone
// costs are edited later; the zone cost is informational and is never added
// into the order total.
type DeliveryTarget struct {
	name     string
	street   string
	zoneID   kernel.UUID
	zoneName string
	zoneCost kernel.Money

	guard guard.ConstructorGuard
}

// NewDeliveryTarget creates a DeliveryTarget with the zone snapshot stamped in.
func NewDeliveryTarget(
	name string,
	street string,
	zoneID kernel.UUID,
	zoneName string,
	zoneCost kernel.Money,
) (DeliveryTarget, error) {
	dt := DeliveryTarget{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		dt.setName(name),
		dt.setStreet(street),
		dt.setZone(zoneID, zoneName, zoneCost),
	); err != nil {
		return DeliveryTarget{}, err
	}

	return dt, nil
}

// Validate checks the DeliveryTarget was created via NewDeliveryTarget.
func (d DeliveryTarget) Validate() error {
	return d.guard.Validate(ErrDeliveryTargetIsNotConstructed)
}

// Name returns the recipient name.
func (d DeliveryTarget) Name() string {
	return d.name
}

// Street returns the free-text delivery address.
func (d DeliveryTarget) Street() string {
	return d.street
}

// ZoneID returns the referenced zone's identifier.
func (d DeliveryTarget) ZoneID() kernel.UUID {
	return d.zoneID
}

// ZoneName returns the zone name as it was at order creation.
func (d DeliveryTarget) ZoneName() string {
	return d.zoneName
}

// ZoneCost returns the shipping cost as it was at order creation.
func (d DeliveryTarget) ZoneCost() kernel.Money {
	return d.zoneCost
}

func (d *DeliveryTarget) setName(name string) error {
	if name == "" {
		return ErrDeliveryNameIsRequired
	}
	if len(name) > maxDeliveryNameLength {
		return errs.NewValueIsOutOfRangeError("deliveryName", len(name), 1, maxDeliveryNameLength)
	}
	d.name = name
	return nil
}

func (d *DeliveryTarget) setStreet(street string) error {
	if street == "" {
		return ErrDeliveryStreetIsRequired
	}
	if len(street) > maxDeliveryStreetLength {
		return errs.NewValueIsOutOfRangeError("deliveryStreet", len(street), 1, maxDeliveryStreetLength)
	}
	d.street = street
	return nil
}

func (d *DeliveryTarget) setZone(zoneID kernel.UUID, zoneName string, zoneCost kernel.Money) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	if zoneName == "" {
		return ErrZoneNameIsRequired
	}
	if err := zoneCost.Validate(); err != nil {
		return err
	}
	d.zoneID = zoneID
	d.zoneName = zoneName
	d.zoneCost = zoneCost
	return nil
}
