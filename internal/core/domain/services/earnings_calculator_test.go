package services_test

import (
	"testing"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func deliveredOrder(t *testing.T, fee float64, createdAt time.Time) *order.Order {
	t.Helper()

	o := orderAt(t, fee, createdAt)
	require.NoError(t, o.Accept(createdAt))
	require.NoError(t, o.Advance(order.Picked, createdAt, nil))
	require.NoError(t, o.Advance(order.EnRoute, createdAt, nil))
	require.NoError(t, o.Advance(order.Delivered, createdAt, nil))
	return o
}

func orderAt(t *testing.T, fee float64, createdAt time.Time) *order.Order {
	t.Helper()

	customer, err := order.NewContact("Asha Rao", "+91 98765 43210")
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), "Veg Thali", 1, money(t, 150))
	require.NoError(t, err)

	pricing, err := order.NewPricing(money(t, 150), money(t, fee), money(t, 150+fee))
	require.NoError(t, err)

	pickup, err := kernel.NewGeoPoint(17.4401, 78.3489)
	require.NoError(t, err)
	drop, err := kernel.NewGeoPoint(17.4933, 78.3915)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1", customer, "Biryani House",
		"12 Jubilee Hills", "4-1-98 Abids Road",
		[]order.Item{item}, pricing, order.PaymentCash, pickup, drop, createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestEarningsCalculator_Rollup(t *testing.T) {
	calc := services.NewEarningsCalculator()

	// Wednesday; week starts Sunday June 8, month starts June 1.
	now := time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC)

	t.Run("should bucket orders by creation time", func(t *testing.T) {
		orders := []*order.Order{
			deliveredOrder(t, 50, time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)), // today
			deliveredOrder(t, 50, time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)),  // this week
			deliveredOrder(t, 50, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)),  // this month
			deliveredOrder(t, 80, time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)), // last month
		}

		summary, err := calc.Rollup(orders, now)

		require.NoError(t, err)
		assert.True(t, summary.Today.IsEqual(money(t, 50)))
		assert.True(t, summary.Week.IsEqual(money(t, 100)))
		assert.True(t, summary.Month.IsEqual(money(t, 150)))
	})

	t.Run("should skip orders that are not delivered", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)
		pending := orderAt(t, 60, createdAt)
		cancelled := orderAt(t, 60, createdAt)
		require.NoError(t, cancelled.Reject("too far", createdAt))

		summary, err := calc.Rollup([]*order.Order{pending, cancelled}, now)

		require.NoError(t, err)
		assert.True(t, summary.Today.IsZero())
		assert.True(t, summary.Month.IsZero())
	})

	t.Run("should include the bucket start instant", func(t *testing.T) {
		sundayNoon := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
		atMidnight := deliveredOrder(t, 40, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))

		summary, err := calc.Rollup([]*order.Order{atMidnight}, sundayNoon)

		require.NoError(t, err)
		assert.True(t, summary.Today.IsEqual(money(t, 40)))
		assert.True(t, summary.Week.IsEqual(money(t, 40)), "a Sunday is its own week start")
		assert.True(t, summary.Month.IsEqual(money(t, 40)))
	})

	t.Run("should count a Saturday order in the preceding Sunday's week", func(t *testing.T) {
		saturday := deliveredOrder(t, 40, time.Date(2025, 6, 7, 10, 0, 0, 0, time.UTC))

		summary, err := calc.Rollup([]*order.Order{saturday}, now)

		require.NoError(t, err)
		assert.True(t, summary.Week.IsZero(), "last week's Saturday is outside this week")
		assert.True(t, summary.Month.IsEqual(money(t, 40)))
	})

	t.Run("should ignore orders after now", func(t *testing.T) {
		future := deliveredOrder(t, 40, now.Add(time.Hour))

		summary, err := calc.Rollup([]*order.Order{future}, now)

		require.NoError(t, err)
		assert.True(t, summary.Month.IsZero())
	})

	t.Run("should be independent of input order", func(t *testing.T) {
		a := deliveredOrder(t, 25.50, time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC))
		b := deliveredOrder(t, 30.25, time.Date(2025, 6, 11, 11, 0, 0, 0, time.UTC))

		forward, err := calc.Rollup([]*order.Order{a, b}, now)
		require.NoError(t, err)
		backward, err := calc.Rollup([]*order.Order{b, a}, now)
		require.NoError(t, err)

		assert.True(t, forward.Today.IsEqual(backward.Today))
		assert.True(t, forward.Today.IsEqual(money(t, 55.75)))
	})

	t.Run("should return zero buckets for no orders", func(t *testing.T) {
		summary, err := calc.Rollup(nil, now)

		require.NoError(t, err)
		assert.True(t, summary.Today.IsZero())
		assert.True(t, summary.Week.IsZero())
		assert.True(t, summary.Month.IsZero())
	})
}
