package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

func testDelivery(t *testing.T) DeliveryTarget {
	t.Helper()
	cost, err := kernel.MoneyFromString("5.00")
	require.NoError(t, err)
	dt, err := NewDeliveryTarget("Ana Gomez", "Av. Siempre Viva 742", kernel.NewUUID(), "Centro", cost)
	require.NoError(t, err)
	return dt
}

func testItem(t *testing.T, unitPrice string, quantity int64) Item {
	t.Helper()
	price, err := kernel.MoneyFromString(unitPrice)
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(decimal.NewFromInt(quantity))
	require.NoError(t, err)
	item, err := NewItem(kernel.NewUUID(), qty, price)
	require.NoError(t, err)
	return item
}

func testOrder(t *testing.T, items ...Item) *Order {
	t.Helper()
	phone, err := kernel.NewPhone("5491155551234")
	require.NoError(t, err)
	if len(items) == 0 {
		items = []Item{testItem(t, "90.00", 1)}
	}
	o, err := NewOrder(kernel.NewUUID(), phone, testDelivery(t), items, Cash, "", time.Now())
	require.NoError(t, err)
	return o
}

func testDriverPhone(t *testing.T) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone("5491166660000")
	require.NoError(t, err)
	return phone
}

func TestNewOrder(t *testing.T) {
	phone, err := kernel.NewPhone("5491155551234")
	require.NoError(t, err)
	now := time.Now()

	o, err := NewOrder(
		kernel.NewUUID(),
		phone,
		testDelivery(t),
		[]Item{testItem(t, "90.00", 3)},
		Transfer,
		"ring twice",
		now,
	)
	require.NoError(t, err)

	assert.NoError(t, o.Validate())
	assert.Equal(t, Issued, o.Status())
	assert.Nil(t, o.Driver())
	assert.Equal(t, Transfer, o.PaymentMethod())
	assert.Equal(t, "ring twice", o.Notes())
	assert.Equal(t, now, o.CreatedAt())
	assert.Equal(t, now, o.UpdatedAt())
	assert.Equal(t, 1, o.Version())
	assert.Equal(t, "270.00", o.Total().String())
}

func TestNewOrderRequiresItems(t *testing.T) {
	phone, err := kernel.NewPhone("5491155551234")
	require.NoError(t, err)

	_, err = NewOrder(kernel.NewUUID(), phone, testDelivery(t), nil, Cash, "", time.Now())
	assert.ErrorIs(t, err, ErrOrderHasNoItems)
}

func TestNewOrderTotalExcludesZoneCost(t *testing.T) {
	// Delivery zone costs 5.00 but the total is item lines only.
	o := testOrder(t, testItem(t, "10.00", 2), testItem(t, "3.50", 1))
	assert.Equal(t, "23.50", o.Total().String())
	assert.Equal(t, "5.00", o.Delivery().ZoneCost().String())
}

func TestNewOrderTotalIsItemOrderInvariant(t *testing.T) {
	a := testItem(t, "12.34", 3)
	b := testItem(t, "0.99", 7)

	first := testOrder(t, a, b)
	second := testOrder(t, b, a)
	assert.True(t, first.Total().IsEqual(second.Total()))
}

func TestNewOrderRejectsLongNotes(t *testing.T) {
	phone, err := kernel.NewPhone("5491155551234")
	require.NoError(t, err)
	notes := make([]byte, maxNotesLength+1)
	for i := range notes {
		notes[i] = 'x'
	}

	_, err = NewOrder(kernel.NewUUID(), phone, testDelivery(t),
		[]Item{testItem(t, "1.00", 1)}, Cash, string(notes), time.Now())
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestOrderAssign(t *testing.T) {
	o := testOrder(t)
	driver := testDriverPhone(t)
	now := time.Now().Add(time.Minute)

	err := o.Assign(driver, now)
	require.NoError(t, err)

	assert.Equal(t, Dispatched, o.Status())
	require.NotNil(t, o.Driver())
	assert.True(t, o.Driver().IsEqual(driver))
	assert.Equal(t, now, o.UpdatedAt())
}

func TestOrderReassign(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Assign(testDriverPhone(t), time.Now()))

	other, err := kernel.NewPhone("5491177779999")
	require.NoError(t, err)
	require.NoError(t, o.Assign(other, time.Now()))

	assert.Equal(t, Dispatched, o.Status())
	assert.True(t, o.Driver().IsEqual(other))
}

func TestOrderAssignCancelled(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Cancel(time.Now()))

	err := o.Assign(testDriverPhone(t), time.Now())
	assert.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestOrderUnassign(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Assign(testDriverPhone(t), time.Now()))

	err := o.Unassign(time.Now())
	require.NoError(t, err)

	assert.Equal(t, Issued, o.Status())
	assert.Nil(t, o.Driver())
}

func TestOrderUnassignIssued(t *testing.T) {
	o := testOrder(t)
	assert.ErrorIs(t, o.Unassign(time.Now()), errs.ErrIllegalTransition)
}

func TestOrderCancel(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Assign(testDriverPhone(t), time.Now()))

	require.NoError(t, o.Cancel(time.Now()))
	assert.Equal(t, Cancelled, o.Status())
	assert.Nil(t, o.Driver())
}

func TestOrderCancelIsIdempotent(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Cancel(time.Now()))

	updated := o.UpdatedAt()
	require.NoError(t, o.Cancel(time.Now().Add(time.Hour)))

	assert.Equal(t, Cancelled, o.Status())
	assert.Equal(t, updated, o.UpdatedAt())
}

func TestOrderChangePaymentMethod(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.ChangePaymentMethod(POS, time.Now()))
	assert.Equal(t, POS, o.PaymentMethod())

	require.NoError(t, o.Cancel(time.Now()))
	err := o.ChangePaymentMethod(Transfer, time.Now())
	assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	assert.Equal(t, POS, o.PaymentMethod())
}

func TestOrderEnsureDeletable(t *testing.T) {
	o := testOrder(t)
	assert.ErrorIs(t, o.EnsureDeletable(), errs.ErrConflict)

	require.NoError(t, o.Assign(testDriverPhone(t), time.Now()))
	assert.ErrorIs(t, o.EnsureDeletable(), errs.ErrConflict)

	require.NoError(t, o.Cancel(time.Now()))
	assert.NoError(t, o.EnsureDeletable())
}

func TestRestoreOrder(t *testing.T) {
	phone, err := kernel.NewPhone("5491155551234")
	require.NoError(t, err)
	driver := testDriverPhone(t)
	total, err := kernel.MoneyFromString("270.00")
	require.NoError(t, err)
	createdAt := time.Now().Add(-time.Hour)
	updatedAt := time.Now()

	o, err := RestoreOrder(
		kernel.NewUUID(),
		phone,
		testDelivery(t),
		[]Item{testItem(t, "90.00", 3)},
		Cash,
		"",
		total,
		Dispatched,
		&driver,
		createdAt,
		updatedAt,
		4,
	)
	require.NoError(t, err)

	assert.NoError(t, o.Validate())
	assert.Equal(t, Dispatched, o.Status())
	require.NotNil(t, o.Driver())
	assert.True(t, o.Driver().IsEqual(driver))
	assert.Equal(t, 4, o.Version())
	assert.Equal(t, "270.00", o.Total().String())
}

func TestRestoreOrderStatusDriverMismatch(t *testing.T) {
	phone, err := kernel.NewPhone("5491155551234")
	require.NoError(t, err)
	driver := testDriverPhone(t)
	total, err := kernel.MoneyFromString("90.00")
	require.NoError(t, err)

	// A driver reference on a non-dispatched order is corrupt state.
	_, err = RestoreOrder(kernel.NewUUID(), phone, testDelivery(t),
		[]Item{testItem(t, "90.00", 1)}, Cash, "", total,
		Issued, &driver, time.Now(), time.Now(), 1)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	// A dispatched order without a driver is equally corrupt.
	_, err = RestoreOrder(kernel.NewUUID(), phone, testDelivery(t),
		[]Item{testItem(t, "90.00", 1)}, Cash, "", total,
		Dispatched, nil, time.Now(), time.Now(), 1)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderValidateUnconstructed(t *testing.T) {
	var o Order
	assert.ErrorIs(t, o.Validate(), ErrOrderIsNotConstructed)

	var nilOrder *Order
	assert.ErrorIs(t, nilOrder.Validate(), ErrOrderIsNotConstructed)
}

func TestPaymentMethodFromString(t *testing.T) {
	for _, s := range []string{"pos", "cash", "transfer"} {
		m, err := PaymentMethodFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}

	_, err := PaymentMethodFromString("crypto")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
