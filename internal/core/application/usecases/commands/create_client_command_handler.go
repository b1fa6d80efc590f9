package commands

import (
	"context"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/pkg/errs"
)

// ErrClientAlreadyExists is returned when the phone is already registered.
var ErrClientAlreadyExists = errs.NewConflictError("client_already_exists")

// CreateClientCommandHandler handles client registration.
// The client and its first address are persisted atomically.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command.
func (h CreateClientCommandHandler) Handle(ctx context.Context, command CreateClientCommand) error {
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

	clientRepo := uow.ClientRepository()

	exists, err := clientRepo.Exists(ctx, command.Phone())
	if err != nil {
		return err
	}
	if exists {
		return ErrClientAlreadyExists
	}

	aggregate, err := client.NewClient(command.Phone(), command.Name(), command.Kind(),
		command.LegalName(), command.TaxID(), command.Discount())
	if err != nil {
		return err
	}

	if _, err = aggregate.AddAddress(command.Street(), command.ZoneID()); err != nil {
		return err
	}

	if err = clientRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
