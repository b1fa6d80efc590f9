package commands

import (
	"context"
	"time"

	"pedidos/internal/pkg/errs"
)

// ErrDriverIsArchived is returned when assigning an order to an archived driver.
var ErrDriverIsArchived = errs.NewConflictError("driver_archived")

// AssignDriverCommandHandler orchestrates assigning an order to a driver.
// Loads both the order and the driver, rejects archived drivers, applies the
// state transition, and persists the order within one transaction.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	cmd, _ := NewAssignDriverCommand(orderID, driverPhone)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errs.IsNotFound(err):
//	    log.Println("Order or driver does not exist")
//	case errs.IsConflict(err):
//	    log.Println("Order cannot be assigned in its current status")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignDriverCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
// Requires an AssignUoWFactory for coordinating driver lookup and order update.
func NewAssignDriverCommandHandler(uowFactory AssignUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// The optimistic version check in the order repository serializes concurrent
// assignments of the same order; the loser surfaces a conflict.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
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

	assignee, err := uow.DriverRepository().Get(ctx, command.DriverPhone())
	if err != nil {
		return err
	}
	if assignee.IsArchived() {
		return ErrDriverIsArchived
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Assign(assignee.Phone(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
