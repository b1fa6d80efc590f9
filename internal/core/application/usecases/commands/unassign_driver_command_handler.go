package commands

import (
	"context"
	"time"
)

// UnassignDriverCommandHandler handles returning a dispatched order to the
// issued queue. The driver reference is cleared as part of the transition.
type UnassignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUnassignDriverCommandHandler creates a handler for unassignment operations.
func NewUnassignDriverCommandHandler(uowFactory OrderUoWFactory) UnassignDriverCommandHandler {
	return UnassignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment command.
// Only dispatched orders can be unassigned; anything else is a conflict.
func (h UnassignDriverCommandHandler) Handle(ctx context.Context, command UnassignDriverCommand) error {
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

	if err = aggregate.Unassign(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
