package commands

import (
	"context"
	"fmt"
	"time"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/services"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// One atomic transaction covers client resolution (attach or inline create),
// delivery address resolution with zone cost snapshotting, line pricing under
// the client discount, and persistence of the issued order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now issued and ready for driver assignment
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
//
// Flow, inside one transaction:
//  1. Attach to the existing client by phone, or create it inline.
//  2. Resolve the delivery address (registered, chosen, or override).
//  3. Snapshot the zone's name and cost from current zone data.
//  4. Price each selection under the client discount; archived products are
//     rejected as invalid input.
//  5. Persist the client changes (new client or appended address) and the
//     issued order together.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
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

	orderClient, isNewClient, err := h.resolveClient(ctx, clientRepo, cmd)
	if err != nil {
		return err
	}

	resolved, err := services.NewAddressResolver().Resolve(orderClient,
		overrideFromCommand(cmd.NewAddress()), cmd.ChosenAddressID())
	if err != nil {
		return err
	}

	deliveryZone, err := uow.ZoneRepository().Get(ctx, resolved.ZoneID)
	if err != nil {
		return err
	}

	items, err := h.priceSelections(ctx, uow, cmd, orderClient)
	if err != nil {
		return err
	}

	delivery, err := order.NewDeliveryTarget(cmd.DeliveryName(), resolved.Street,
		deliveryZone.ID(), deliveryZone.Name(), deliveryZone.Cost())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), orderClient.Phone(), delivery,
		items, cmd.PaymentMethod(), cmd.Notes(), time.Now())
	if err != nil {
		return err
	}

	switch {
	case isNewClient:
		err = clientRepo.Add(ctx, orderClient)
	case resolved.Appended:
		err = clientRepo.Update(ctx, orderClient)
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveClient attaches to the existing client or builds a new one from the
// command's inline fields. The new client is persisted later, together with
// the order.
func (h CreateOrderCommandHandler) resolveClient(
	ctx context.Context,
	clientRepo ports.ClientRepository,
	cmd CreateOrderCommand,
) (*client.Client, bool, error) {
	exists, err := clientRepo.Exists(ctx, cmd.ClientPhone())
	if err != nil {
		return nil, false, err
	}

	if exists {
		existing, err := clientRepo.Get(ctx, cmd.ClientPhone())
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	created, err := client.NewClient(cmd.ClientPhone(), cmd.ClientName(), cmd.ClientKind(),
		cmd.LegalName(), cmd.TaxID(), cmd.ClientDiscount())
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func overrideFromCommand(addr *NewDeliveryAddress) *services.AddressOverride {
	if addr == nil {
		return nil
	}
	return &services.AddressOverride{Street: addr.Street, ZoneID: addr.ZoneID}
}

// priceSelections loads each selected product, rejects archived ones, and
// prices the lines under the client discount.
func (h CreateOrderCommandHandler) priceSelections(
	ctx context.Context,
	uow CreateOrderUoW,
	cmd CreateOrderCommand,
	orderClient *client.Client,
) ([]order.Item, error) {
	productRepo := uow.ProductRepository()
	selections := make([]services.Selection, 0, len(cmd.Selections()))

	for _, sel := range cmd.Selections() {
		prod, err := productRepo.Get(ctx, sel.ProductID)
		if err != nil {
			return nil, err
		}
		if prod.IsArchived() {
			return nil, errs.NewValueIsInvalidErrorWithCause("productID",
				fmt.Errorf("product %s is archived and cannot be ordered", prod.Code()))
		}
		selections = append(selections, services.Selection{Product: prod, Quantity: sel.Quantity})
	}

	return services.NewOrderPricer().Price(selections, orderClient.Discount())
}
