package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to assign an order to a driver.
// Valid both for the initial assignment of an issued order and for
// reassigning a dispatched order to a different driver.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	driverPhone kernel.Phone

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign an order to a driver.
// Validates that both the order id and the driver phone are well-formed.
func NewAssignDriverCommand(orderID kernel.UUID, driverPhone kernel.Phone) (AssignDriverCommand, error) {
	command := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDriverPhone(driverPhone),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverPhone returns the identifying phone of the assignee.
func (c AssignDriverCommand) DriverPhone() kernel.Phone {
	return c.driverPhone
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.driverPhone = phone
	return nil
}
