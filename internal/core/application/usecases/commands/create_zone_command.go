package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateZoneCommandIsNotConstructed = errors.New(
		"CreateZoneCommand must be created via NewCreateZoneCommand constructor",
	)
	ErrZoneNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateZoneCommand represents a request to register a shipping zone.
type CreateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID
	name   string
	cost   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateZoneCommand creates a command to register a new zone.
func NewCreateZoneCommand(zoneID kernel.UUID, name string, cost kernel.Money) (CreateZoneCommand, error) {
	command := CreateZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setZoneID(zoneID),
		command.setName(name),
		command.setCost(cost),
	); err != nil {
		return CreateZoneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateZoneCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneCommandIsNotConstructed)
}

// ZoneID returns the identifier for the new zone.
func (c CreateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

// Name returns the zone name.
func (c CreateZoneCommand) Name() string {
	return c.name
}

// Cost returns the zone's shipping cost.
func (c CreateZoneCommand) Cost() kernel.Money {
	return c.cost
}

func (c *CreateZoneCommand) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}

	c.zoneID = zoneID
	return nil
}

func (c *CreateZoneCommand) setName(name string) error {
	if name == "" {
		return ErrZoneNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneCommand) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}

	c.cost = cost
	return nil
}
