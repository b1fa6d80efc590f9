// Package driver contains the Driver entity. Drivers are identified by phone
// number and referenced by orders as an optional assignee; an archived driver
// can no longer be assigned to orders.
package driver

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Driver delivers dispatched orders. The phone number is the external
// identifier.
type Driver struct {
	phone    kernel.Phone
	name     string
	archived bool

	guard guard.ConstructorGuard
}

// NewDriver creates a Driver identified by a phone number.
func NewDriver(phone kernel.Phone, name string) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setPhone(phone),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(phone kernel.Phone, name string, archived bool) (*Driver, error) {
	d, err := NewDriver(phone, name)
	if err != nil {
		return nil, err
	}
	d.archived = archived
	return d, nil
}

// Validate checks the Driver was created via NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// Phone returns the driver's identifying phone number.
func (d *Driver) Phone() kernel.Phone {
	return d.phone
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// IsArchived reports whether the driver can no longer take assignments.
func (d *Driver) IsArchived() bool {
	return d.archived
}

// Archive removes the driver from the pool of assignable drivers.
func (d *Driver) Archive() {
	d.archived = true
}

func (d *Driver) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	d.phone = phone
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
