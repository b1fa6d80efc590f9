package commands

import (
	"context"

	"pedidos/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles driver registration.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, command CreateDriverCommand) error {
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

	aggregate, err := driver.NewDriver(command.Phone(), command.Name())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
