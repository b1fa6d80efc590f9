// Package client contains the Client aggregate. A client is identified by a
// digit-only phone number and owns an ordered collection of delivery
// addresses. Business clients carry invoicing fields that individual clients
// do not; the cross-field rule lives in the constructor, not in any transport
// schema.
package client

import (
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

var (
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	// ErrNameIsRequired is returned when attempting to create a client without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLegalNameIsRequired is returned when a business client is missing its legal name.
	ErrLegalNameIsRequired = errs.NewValueIsRequiredError("legalName")
	// ErrTaxIDIsRequired is returned when a business client is missing its tax id.
	ErrTaxIDIsRequired = errs.NewValueIsRequiredError("taxID")
	// ErrAddressNotFound is returned when a referenced address does not belong to the client.
	ErrAddressNotFound = errs.NewObjectNotFoundError("addressId", "address")
)

// Client represents a delivery customer. It is an aggregate root owning its
// Address collection.
//
// Invariants:
//   - The phone number is the external identifier and must be valid.
//   - Business clients must carry a legal name and tax id; individual clients
//     must not require them.
//   - The discount percentage is bounded to [0, 100] (enforced by Percent).
//   - A persisted client has at least one address; a brand-new client created
//     inline while composing an order may transiently have zero addresses
//     until the order's delivery address is appended to it.
type Client struct {
	phone     kernel.Phone
	name      string
	kind      Kind
	legalName string
	taxID     string
	discount  kernel.Percent
	archived  bool
	addresses []*Address

	guard guard.ConstructorGuard
}

// NewClient creates a Client with no addresses yet. For business clients the
// legal name and tax id are mandatory; for individual clients they are
// ignored if provided.
func NewClient(
	phone kernel.Phone,
	name string,
	kind Kind,
	legalName string,
	taxID string,
	discount kernel.Percent,
) (*Client, error) {
	c := &Client{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setPhone(phone),
		c.setName(name),
		c.setKind(kind),
		c.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	if err := c.setBusinessFields(legalName, taxID); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client aggregate from persistent storage,
// including its addresses and archived flag.
func RestoreClient(
	phone kernel.Phone,
	name string,
	kind Kind,
	legalName string,
	taxID string,
	discount kernel.Percent,
	archived bool,
	addresses []*Address,
) (*Client, error) {
	c, err := NewClient(phone, name, kind, legalName, taxID, discount)
	if err != nil {
		return nil, err
	}

	for _, a := range addresses {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	c.archived = archived
	c.addresses = addresses
	return c, nil
}

// Validate checks the Client was created via NewClient.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// Phone returns the client's identifying phone number.
func (c *Client) Phone() kernel.Phone {
	return c.phone
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// Kind returns whether the client is an individual or a business.
func (c *Client) Kind() Kind {
	return c.kind
}

// LegalName returns the invoicing legal name (business clients only).
func (c *Client) LegalName() string {
	return c.legalName
}

// TaxID returns the invoicing tax id (business clients only).
func (c *Client) TaxID() string {
	return c.taxID
}

// Discount returns the client's discount percentage applied to every
// order line at pricing time.
func (c *Client) Discount() kernel.Percent {
	return c.discount
}

// IsArchived reports whether the client is archived.
func (c *Client) IsArchived() bool {
	return c.archived
}

// Archive marks the client as archived.
func (c *Client) Archive() {
	c.archived = true
}

// Addresses returns the client's delivery addresses.
// The returned slice is a copy to prevent external modification.
func (c *Client) Addresses() []*Address {
	out := make([]*Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

// AddressByID returns the address with the given id, or ErrAddressNotFound.
func (c *Client) AddressByID(id kernel.UUID) (*Address, error) {
	for _, a := range c.addresses {
		if a.ID().IsEqual(id) {
			return a, nil
		}
	}
	return nil, ErrAddressNotFound
}

// AddAddress appends a new delivery address to the client so it becomes
// selectable on future orders.
func (c *Client) AddAddress(street string, zoneID kernel.UUID) (*Address, error) {
	a, err := NewAddress(kernel.NewUUID(), street, zoneID)
	if err != nil {
		return nil, err
	}

	c.addresses = append(c.addresses, a)
	return a, nil
}

func (c *Client) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Client) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *Client) setDiscount(discount kernel.Percent) error {
	if err := discount.Validate(); err != nil {
		return err
	}
	c.discount = discount
	return nil
}

// setBusinessFields applies the kind-conditional requirement: business
// clients need invoicing data, individual clients keep the fields empty.
func (c *Client) setBusinessFields(legalName, taxID string) error {
	if c.kind != Business {
		return nil
	}
	if legalName == "" {
		return ErrLegalNameIsRequired
	}
	if taxID == "" {
		return ErrTaxIDIsRequired
	}
	c.legalName = legalName
	c.taxID = taxID
	return nil
}
