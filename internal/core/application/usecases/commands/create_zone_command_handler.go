package commands

import (
	"context"

	"pedidos/internal/core/domain/model/zone"
)

// CreateZoneCommandHandler handles shipping zone registration.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
}

// NewCreateZoneCommandHandler creates a handler for zone registration.
func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone registration command.
func (h CreateZoneCommandHandler) Handle(ctx context.Context, command CreateZoneCommand) error {
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

	aggregate, err := zone.NewZone(command.ZoneID(), command.Name(), command.Cost())
	if err != nil {
		return err
	}

	if err = uow.ZoneRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
