package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"pedidos/internal/core/domain/model/client"
	"pedidos/internal/core/domain/model/driver"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/loan"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/product"
	"pedidos/internal/core/domain/model/zone"
)

func mustPhone(t *testing.T, number string) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone(number)
	require.NoError(t, err)
	return phone
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustQuantity(t *testing.T, value int64) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(decimal.NewFromInt(value))
	require.NoError(t, err)
	return q
}

func mustPercent(t *testing.T, value int) kernel.Percent {
	t.Helper()
	p, err := kernel.PercentFromInt(value)
	require.NoError(t, err)
	return p
}

func buildZone(t *testing.T) *zone.Zone {
	t.Helper()
	z, err := zone.NewZone(kernel.NewUUID(), "Centro", mustMoney(t, "5.00"))
	require.NoError(t, err)
	return z
}

func buildProduct(t *testing.T, code, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), code, "Producto "+code, "",
		mustMoney(t, price), kernel.ZeroPercent())
	require.NoError(t, err)
	return p
}

func buildClientWithAddress(t *testing.T, phone kernel.Phone, zoneID kernel.UUID) *client.Client {
	t.Helper()
	c, err := client.NewClient(phone, "Ana Gomez", client.Individual, "", "", mustPercent(t, 10))
	require.NoError(t, err)
	_, err = c.AddAddress("Av. Siempre Viva 742", zoneID)
	require.NoError(t, err)
	return c
}

func buildDriver(t *testing.T, phone kernel.Phone) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(phone, "Carlos Ruiz")
	require.NoError(t, err)
	return d
}

func buildIssuedOrder(t *testing.T) *order.Order {
	t.Helper()
	z := buildZone(t)
	delivery, err := order.NewDeliveryTarget("Ana Gomez", "Av. Siempre Viva 742",
		z.ID(), z.Name(), z.Cost())
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), mustQuantity(t, 2), mustMoney(t, "90.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), mustPhone(t, "5491155551234"), delivery,
		[]order.Item{item}, order.Cash, "", time.Now())
	require.NoError(t, err)
	return o
}

func buildOpenLoan(t *testing.T) *loan.Loan {
	t.Helper()
	l, err := loan.NewLoan(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return l
}
