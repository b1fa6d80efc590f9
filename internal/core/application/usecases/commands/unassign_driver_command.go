package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/guard"
)

var ErrUnassignDriverCommandIsNotConstructed = errors.New(
	"UnassignDriverCommand must be created via NewUnassignDriverCommand constructor",
)

// UnassignDriverCommand represents a request to clear an order's driver and
// return it to the issued queue.
type UnassignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignDriverCommand creates a command to unassign a dispatched order.
func NewUnassignDriverCommand(orderID kernel.UUID) (UnassignDriverCommand, error) {
	command := UnassignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return UnassignDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignDriverCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDriverCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to unassign.
func (c UnassignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *UnassignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
