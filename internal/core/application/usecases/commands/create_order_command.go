package commands

import (
	"errors"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryNameIsRequired = errs.NewValueIsRequiredError("deliveryName")
	ErrClientNameIsRequired   = errs.NewValueIsRequiredError("clientName")
	ErrNoItemsSelected        = errs.NewValueIsRequiredError("items")
)

// ItemSelection is one product line requested by the caller.
type ItemSelection struct {
	ProductID kernel.UUID
	Quantity  kernel.Quantity
}

// NewDeliveryAddress is a caller-supplied delivery address that diverges from
// the client's registered ones. When present it wins over any registered
// address and is appended to the client.
type NewDeliveryAddress struct {
	Street string
	ZoneID kernel.UUID
}

// CreateOrderCommand represents a request to create a new delivery order.
// It carries everything the atomic creation needs: the client identity
// (existing phone or inline details for a brand-new client), the delivery
// target, the product selections, and the payment method.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), phone, "Ana Gomez",
//	    client.Individual, "", "", discount, "Ana Gomez", nil, nil,
//	    selections, order.Cash, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	clientPhone     kernel.Phone
	clientName      string
	clientKind      client.Kind
	legalName       string
	taxID           string
	clientDiscount  kernel.Percent
	deliveryName    string
	newAddress      *NewDeliveryAddress
	chosenAddressID *kernel.UUID
	selections      []ItemSelection
	paymentMethod   order.PaymentMethod
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates the client phone, the delivery name, the payment method, and that
// at least one item was selected. The inline client fields (name, kind,
// invoicing data, discount) are only used when the phone is not yet known;
// the cross-field business rules are enforced by the Client constructor in
// the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientPhone kernel.Phone,
	clientName string,
	clientKind client.Kind,
	legalName string,
	taxID string,
	clientDiscount kernel.Percent,
	deliveryName string,
	newAddress *NewDeliveryAddress,
	chosenAddressID *kernel.UUID,
	selections []ItemSelection,
	paymentMethod order.PaymentMethod,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientPhone(clientPhone),
		orderCommand.setClientName(clientName),
		orderCommand.setClientKind(clientKind),
		orderCommand.setClientDiscount(clientDiscount),
		orderCommand.setDeliveryName(deliveryName),
		orderCommand.setSelections(selections),
		orderCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.legalName = legalName
	orderCommand.taxID = taxID
	orderCommand.newAddress = newAddress
	orderCommand.chosenAddressID = chosenAddressID
	orderCommand.notes = notes
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientPhone returns the client's identifying phone number.
func (c CreateOrderCommand) ClientPhone() kernel.Phone {
	return c.clientPhone
}

// ClientName returns the display name for inline client creation.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// ClientKind returns the kind for inline client creation.
func (c CreateOrderCommand) ClientKind() client.Kind {
	return c.clientKind
}

// LegalName returns the invoicing legal name for inline business clients.
func (c CreateOrderCommand) LegalName() string {
	return c.legalName
}

// TaxID returns the invoicing tax id for inline business clients.
func (c CreateOrderCommand) TaxID() string {
	return c.taxID
}

// ClientDiscount returns the discount for inline client creation.
func (c CreateOrderCommand) ClientDiscount() kernel.Percent {
	return c.clientDiscount
}

// DeliveryName returns the recipient name for the delivery target.
func (c CreateOrderCommand) DeliveryName() string {
	return c.deliveryName
}

// NewAddress returns the optional different delivery address.
func (c CreateOrderCommand) NewAddress() *NewDeliveryAddress {
	return c.newAddress
}

// ChosenAddressID returns the optional explicit pick among registered addresses.
func (c CreateOrderCommand) ChosenAddressID() *kernel.UUID {
	return c.chosenAddressID
}

// Selections returns the requested product lines.
func (c CreateOrderCommand) Selections() []ItemSelection {
	return c.selections
}

// PaymentMethod returns how the order will be paid.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns the optional free-text notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.clientPhone = phone
	return nil
}

func (c *CreateOrderCommand) setClientName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.clientName = name
	return nil
}

func (c *CreateOrderCommand) setClientKind(kind client.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.clientKind = kind
	return nil
}

func (c *CreateOrderCommand) setClientDiscount(discount kernel.Percent) error {
	if err := discount.Validate(); err != nil {
		return err
	}

	c.clientDiscount = discount
	return nil
}

func (c *CreateOrderCommand) setDeliveryName(name string) error {
	if name == "" {
		return ErrDeliveryNameIsRequired
	}

	c.deliveryName = name
	return nil
}

func (c *CreateOrderCommand) setSelections(selections []ItemSelection) error {
	if len(selections) == 0 {
		return ErrNoItemsSelected
	}

	for _, sel := range selections {
		if err := errors.Join(sel.ProductID.Validate(), sel.Quantity.Validate()); err != nil {
			return err
		}
	}

	c.selections = selections
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.paymentMethod = method
	return nil
}
