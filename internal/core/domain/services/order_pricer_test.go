package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/product"
)

func testProduct(t *testing.T, code, price string) *product.Product {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	prod, err := product.NewProduct(kernel.NewUUID(), code, "Producto "+code, "", p, kernel.ZeroPercent())
	require.NoError(t, err)
	return prod
}

func testQuantity(t *testing.T, value int64) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(decimal.NewFromInt(value))
	require.NoError(t, err)
	return q
}

func testDiscount(t *testing.T, value int) kernel.Percent {
	t.Helper()
	d, err := kernel.PercentFromInt(value)
	require.NoError(t, err)
	return d
}

func TestPriceAppliesDiscount(t *testing.T) {
	pricer := NewOrderPricer()
	prod := testProduct(t, "A01", "100.00")

	items, err := pricer.Price([]Selection{{Product: prod, Quantity: testQuantity(t, 3)}}, testDiscount(t, 10))
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "90.00", items[0].UnitPriceAfterDiscount().String())
	assert.Equal(t, "270.00", items[0].ExtendedPrice().String())
}

func TestPriceZeroAndFullDiscount(t *testing.T) {
	pricer := NewOrderPricer()
	prod := testProduct(t, "A01", "19.99")

	items, err := pricer.Price([]Selection{{Product: prod, Quantity: testQuantity(t, 1)}}, kernel.ZeroPercent())
	require.NoError(t, err)
	assert.Equal(t, "19.99", items[0].UnitPriceAfterDiscount().String())

	items, err = pricer.Price([]Selection{{Product: prod, Quantity: testQuantity(t, 1)}}, testDiscount(t, 100))
	require.NoError(t, err)
	assert.Equal(t, "0.00", items[0].UnitPriceAfterDiscount().String())
}

func TestPriceDuplicateSelectionIsIgnored(t *testing.T) {
	pricer := NewOrderPricer()
	prod := testProduct(t, "A01", "10.00")

	items, err := pricer.Price([]Selection{
		{Product: prod, Quantity: testQuantity(t, 2)},
		{Product: prod, Quantity: testQuantity(t, 9)},
	}, kernel.ZeroPercent())
	require.NoError(t, err)

	// First occurrence wins, the repeat is a no-op.
	require.Len(t, items, 1)
	assert.True(t, items[0].Quantity().IsEqual(testQuantity(t, 2)))
}

func TestPriceDistinctProducts(t *testing.T) {
	pricer := NewOrderPricer()

	items, err := pricer.Price([]Selection{
		{Product: testProduct(t, "A01", "10.00"), Quantity: testQuantity(t, 1)},
		{Product: testProduct(t, "B02", "3.50"), Quantity: testQuantity(t, 2)},
	}, kernel.ZeroPercent())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "10.00", items[0].ExtendedPrice().String())
	assert.Equal(t, "7.00", items[1].ExtendedPrice().String())
}

func TestPriceEmptySelections(t *testing.T) {
	pricer := NewOrderPricer()

	items, err := pricer.Price(nil, kernel.ZeroPercent())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPriceHalfUpRounding(t *testing.T) {
	pricer := NewOrderPricer()
	prod := testProduct(t, "A01", "1.25")

	items, err := pricer.Price([]Selection{{Product: prod, Quantity: testQuantity(t, 1)}}, testDiscount(t, 50))
	require.NoError(t, err)

	// 1.25 at 50% is 0.625, rounded half-up to 0.63.
	assert.Equal(t, "0.63", items[0].UnitPriceAfterDiscount().String())
}
