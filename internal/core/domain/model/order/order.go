package order

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// maxNotesLength bounds the optional free-text notes.
const maxNotesLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderHasNoItems is returned when an order is submitted with zero line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one line item")
)

// Order represents a delivery order. It is the aggregate root that manages
// the order lifecycle from creation through dispatch to cancellation.
//
// Order follows these invariants:
//   - Must have at least one line item.
//   - The total equals the sum of every item's extended price; the zone cost
//     snapshot is informational and excluded from the total.
//   - A driver reference is present if and only if the status is Dispatched.
//   - Once Cancelled, no item or payment mutation is permitted; only deletion
//     is allowed afterwards.
//   - Can only be created through NewOrder or RestoreOrder.
//
// Line items, pricing, and the delivery target are immutable after creation;
// the only amendable field is the payment method, and only while the order is
// not cancelled. Lifecycle changes go through Assign, Unassign, and Cancel.
type Order struct {
	id            kernel.UUID
	clientPhone   kernel.Phone
	delivery      DeliveryTarget
	items         []Item
	paymentMethod PaymentMethod
	notes         string
	total         kernel.Money
	status        Status
	driverPhone   *kernel.Phone
	createdAt     time.Time
	updatedAt     time.Time
	version       int

	guard guard.ConstructorGuard
}

// NewOrder creates an Order in Issued status with no driver.
//
// The total is computed here, once, as the sum of every item's extended
// price, and is stored rather than recomputed on later reads.
//
// Parameters:
//   - id: unique identifier for the order
//   - clientPhone: identifier of the (possibly just-created) client
//   - delivery: resolved delivery target with zone snapshot
//   - items: priced line items (at least one)
//   - paymentMethod: one of the fixed payment methods
//   - notes: optional free text, bounded length
//   - now: creation timestamp
//
// Returns a validation error if any component is invalid or no items were
// supplied (ErrOrderHasNoItems).
func NewOrder(
	id kernel.UUID,
	clientPhone kernel.Phone,
	delivery DeliveryTarget,
	items []Item,
	paymentMethod PaymentMethod,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status: Issued,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientPhone(clientPhone),
		o.setDelivery(delivery),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setNotes(notes),
	); err != nil {
		return nil, err
	}

	o.total = sumExtendedPrices(o.items)
	o.createdAt = now
	o.updatedAt = now
	o.version = 1
	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// stored total, status, driver reference, timestamps, and version.
//
// The stored total is trusted as-is: it is a creation-time snapshot and must
// not be recomputed from current product or client rows. Consistency between
// status and driver reference is re-validated.
func RestoreOrder(
	id kernel.UUID,
	clientPhone kernel.Phone,
	delivery DeliveryTarget,
	items []Item,
	paymentMethod PaymentMethod,
	notes string,
	total kernel.Money,
	status Status,
	driverPhone *kernel.Phone,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientPhone(clientPhone),
		o.setDelivery(delivery),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setNotes(notes),
		total.Validate(),
		status.Validate(),
		status.ValidateCanHaveDriver(driverPhone != nil),
	); err != nil {
		return nil, err
	}

	if driverPhone != nil {
		if err := driverPhone.Validate(); err != nil {
			return nil, err
		}
		phone := *driverPhone
		o.driverPhone = &phone
	}

	o.total = total
	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientPhone returns the identifier of the ordering client.
func (o *Order) ClientPhone() kernel.Phone {
	return o.clientPhone
}

// Delivery returns the delivery target with its zone snapshot.
func (o *Order) Delivery() DeliveryTarget {
	return o.delivery
}

// Items returns the order's line items.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// Total returns the stored order total: the sum of every line's extended
// price, excluding the zone cost.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's phone, or nil if unassigned.
func (o *Order) Driver() *kernel.Phone {
	return o.driverPhone
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency version.
// The storage layer increments it on every successful update.
func (o *Order) Version() int {
	return o.version
}

// Assign assigns the order to a driver and moves it to Dispatched.
//
// Valid from Issued (initial assignment) and from Dispatched (reassignment,
// which replaces the driver reference). Assigning the same driver again is
// permitted and is a no-op at the data level. The driver's existence and
// archived flag are guarded by the caller, which holds the driver record.
func (o *Order) Assign(driverPhone kernel.Phone, now time.Time) error {
	if err := driverPhone.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverPhone = &driverPhone
	o.updatedAt = now
	return nil
}

// Unassign clears the driver reference and moves the order back to Issued.
// Only valid from Dispatched.
func (o *Order) Unassign(now time.Time) error {
	newStatus, err := o.status.Unassign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverPhone = nil
	o.updatedAt = now
	return nil
}

// Cancel moves the order to Cancelled, clearing any driver reference.
// Cancelling an already-cancelled order is an idempotent no-op.
// Nothing is released or restocked; cancellation purely flips status.
func (o *Order) Cancel(now time.Time) error {
	if o.status == Cancelled {
		return nil
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverPhone = nil
	o.updatedAt = now
	return nil
}

// ChangePaymentMethod amends how the order is paid.
// Not permitted once the order is cancelled.
func (o *Order) ChangePaymentMethod(method PaymentMethod, now time.Time) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if o.status == Cancelled {
		return errs.NewIllegalTransitionError(o.status.String(), "changePaymentMethod")
	}

	o.paymentMethod = method
	o.updatedAt = now
	return nil
}

// EnsureDeletable returns nil if the order may be hard-deleted.
// Deletion is restricted to cancelled orders; anything else is a conflict.
func (o *Order) EnsureDeletable() error {
	if !o.status.CanDelete() {
		return errs.NewConflictError("order_not_cancelled")
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.clientPhone = phone
	return nil
}

func (o *Order) setDelivery(delivery DeliveryTarget) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes", len(notes), 0, maxNotesLength)
	}
	o.notes = notes
	return nil
}

func sumExtendedPrices(items []Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.ExtendedPrice())
	}
	return total
}
