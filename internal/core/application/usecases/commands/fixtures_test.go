package commands_test

import (
	"testing"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func buildAssignedOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewContact("Asha Rao", "+91 98765 43210")
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), "Veg Thali", 1, money(t, 150))
	require.NoError(t, err)

	pricing, err := order.NewPricing(money(t, 150), money(t, 50), money(t, 200))
	require.NoError(t, err)

	pickup, err := kernel.NewGeoPoint(17.4401, 78.3489)
	require.NoError(t, err)
	drop, err := kernel.NewGeoPoint(17.4933, 78.3915)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1042", customer, "Biryani House",
		"12 Jubilee Hills", "4-1-98 Abids Road",
		[]order.Item{item}, pricing, order.PaymentCash, pickup, drop,
		time.Now().Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}

func buildEnRouteOrder(t *testing.T) *order.Order {
	t.Helper()

	o := buildAssignedOrder(t)
	now := time.Now()
	require.NoError(t, o.Accept(now))
	require.NoError(t, o.Advance(order.Picked, now, nil))
	require.NoError(t, o.Advance(order.EnRoute, now, nil))
	return o
}
