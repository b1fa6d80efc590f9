package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/guard"
)

var ErrChangeOrderPaymentCommandIsNotConstructed = errors.New(
	"ChangeOrderPaymentCommand must be created via NewChangeOrderPaymentCommand constructor",
)

// ChangeOrderPaymentCommand represents a request to amend how an order is
// paid. The payment method is the only field amendable after creation.
type ChangeOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewChangeOrderPaymentCommand creates a command to amend an order's payment method.
func NewChangeOrderPaymentCommand(
	orderID kernel.UUID,
	paymentMethod order.PaymentMethod,
) (ChangeOrderPaymentCommand, error) {
	command := ChangeOrderPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return ChangeOrderPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to amend.
func (c ChangeOrderPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns the new payment method.
func (c ChangeOrderPaymentCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *ChangeOrderPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderPaymentCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
