package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateDriverCommand represents a request to register a delivery driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	phone kernel.Phone
	name  string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
func NewCreateDriverCommand(phone kernel.Phone, name string) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPhone(phone),
		command.setName(name),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Phone returns the driver's identifying phone number.
func (c CreateDriverCommand) Phone() kernel.Phone {
	return c.phone
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c *CreateDriverCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}
