package commands

import (
	"context"
	"time"
)

// ChangeOrderPaymentCommandHandler handles payment method amendments.
// The amendment is blocked once the order is cancelled.
type ChangeOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderPaymentCommandHandler creates a handler for payment amendments.
func NewChangeOrderPaymentCommandHandler(uowFactory OrderUoWFactory) ChangeOrderPaymentCommandHandler {
	return ChangeOrderPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment amendment command.
func (h ChangeOrderPaymentCommandHandler) Handle(ctx context.Context, command ChangeOrderPaymentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangePaymentMethod(command.PaymentMethod(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
