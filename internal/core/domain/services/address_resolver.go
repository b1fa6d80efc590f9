package services

import (
	"errors"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// Both resolution failures are correctable by the caller, so they carry the
// required-value category and surface as bad requests at the transport layer.
var (
	// ErrAddressSelectionRequired is returned when the client has several
	// registered addresses and the caller picked none.
	ErrAddressSelectionRequired = errs.NewValueIsRequiredErrorWithCause(
		"addressId", errors.New("client has multiple addresses"))
	// ErrAddressOverrideRequired is returned when the client has no registered
	// addresses yet and no override was supplied.
	ErrAddressOverrideRequired = errs.NewValueIsRequiredErrorWithCause(
		"deliveryAddress", errors.New("client has no addresses"))
)

// AddressOverride is a caller-supplied delivery address that diverges from
// the client's registered ones.
type AddressOverride struct {
	Street string
	ZoneID kernel.UUID
}

// ResolvedAddress is the effective delivery address for a new order: the
// street text and the zone to snapshot the shipping cost from. Appended
// reports whether the resolution added a new address to the client, so the
// caller knows to persist the client's address collection.
type ResolvedAddress struct {
	Street   string
	ZoneID   kernel.UUID
	Appended bool
}

// AddressResolver is a domain service that determines the effective delivery
// address for a new order given a client and an optional override.
//
// Resolution rules:
//   - An explicit override is always authoritative, and is appended to the
//     client's address collection so it becomes selectable on future orders.
//   - Otherwise, a client with exactly one registered address uses it.
//   - A client with several addresses requires an explicit choice by
//     address id; without one the resolution fails.
//   - A client with no addresses yet (created inline while composing the
//     order) requires the override.
//
// The zone shipping cost is snapshotted by the caller from the resolved
// zone id; the resolver only decides which address and zone apply.
type AddressResolver struct{}

// NewAddressResolver creates a new AddressResolver instance.
func NewAddressResolver() AddressResolver {
	return AddressResolver{}
}

// Resolve determines the delivery address for the given client.
//
// Parameters:
//   - c: the ordering client (may have zero, one, or many addresses)
//   - override: optional different delivery address; when set it wins and is
//     appended to the client
//   - chosenAddressID: optional explicit pick among the client's addresses
//
// Returns the effective address, or ErrAddressSelectionRequired /
// ErrAddressOverrideRequired when the rules above cannot decide.
func (r AddressResolver) Resolve(
	c *client.Client,
	override *AddressOverride,
	chosenAddressID *kernel.UUID,
) (ResolvedAddress, error) {
	if err := c.Validate(); err != nil {
		return ResolvedAddress{}, err
	}

	if override != nil {
		added, err := c.AddAddress(override.Street, override.ZoneID)
		if err != nil {
			return ResolvedAddress{}, err
		}
		return ResolvedAddress{
			Street:   added.Street(),
			ZoneID:   added.ZoneID(),
			Appended: true,
		}, nil
	}

	addresses := c.Addresses()
	switch {
	case len(addresses) == 0:
		return ResolvedAddress{}, ErrAddressOverrideRequired
	case len(addresses) == 1:
		return ResolvedAddress{
			Street: addresses[0].Street(),
			ZoneID: addresses[0].ZoneID(),
		}, nil
	case chosenAddressID == nil:
		return ResolvedAddress{}, ErrAddressSelectionRequired
	}

	chosen, err := c.AddressByID(*chosenAddressID)
	if err != nil {
		return ResolvedAddress{}, err
	}
	return ResolvedAddress{
		Street: chosen.Street(),
		ZoneID: chosen.ZoneID(),
	}, nil
}
