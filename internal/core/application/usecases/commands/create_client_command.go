package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrAddressStreetIsRequired = errs.NewValueIsRequiredError("street")
)

// CreateClientCommand represents a request to register a client with its
// first delivery address. Persisted clients always carry at least one
// address; only the inline path during order creation may defer it.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	phone     kernel.Phone
	name      string
	kind      client.Kind
	legalName string
	taxID     string
	discount  kernel.Percent
	street    string
	zoneID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
func NewCreateClientCommand(
	phone kernel.Phone,
	name string,
	kind client.Kind,
	legalName string,
	taxID string,
	discount kernel.Percent,
	street string,
	zoneID kernel.UUID,
) (CreateClientCommand, error) {
	command := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPhone(phone),
		command.setName(name),
		command.setKind(kind),
		command.setDiscount(discount),
		command.setAddress(street, zoneID),
	); err != nil {
		return CreateClientCommand{}, err
	}

	command.legalName = legalName
	command.taxID = taxID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// Phone returns the client's identifying phone number.
func (c CreateClientCommand) Phone() kernel.Phone {
	return c.phone
}

// Name returns the client's display name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Kind returns whether the client is an individual or a business.
func (c CreateClientCommand) Kind() client.Kind {
	return c.kind
}

// LegalName returns the invoicing legal name (business clients only).
func (c CreateClientCommand) LegalName() string {
	return c.legalName
}

// TaxID returns the invoicing tax id (business clients only).
func (c CreateClientCommand) TaxID() string {
	return c.taxID
}

// Discount returns the client's discount percentage.
func (c CreateClientCommand) Discount() kernel.Percent {
	return c.discount
}

// Street returns the first address's street text.
func (c CreateClientCommand) Street() string {
	return c.street
}

// ZoneID returns the first address's zone reference.
func (c CreateClientCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c *CreateClientCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateClientCommand) setKind(kind client.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateClientCommand) setDiscount(discount kernel.Percent) error {
	if err := discount.Validate(); err != nil {
		return err
	}

	c.discount = discount
	return nil
}

func (c *CreateClientCommand) setAddress(street string, zoneID kernel.UUID) error {
	if street == "" {
		return ErrAddressStreetIsRequired
	}
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.street = street
	c.zoneID = zoneID
	return nil
}
