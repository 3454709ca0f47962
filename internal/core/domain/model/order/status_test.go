package order_test

import (
	"fmt"
	"testing"

	"riderhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Assigned))
		assert.Equal(t, 2, int(order.Accepted))
		assert.Equal(t, 3, int(order.Picked))
		assert.Equal(t, 4, int(order.EnRoute))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all lifecycle statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Assigned,
			order.Accepted,
			order.Picked,
			order.EnRoute,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7), order.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "status is invalid")
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Assigned, "assigned"},
			{order.Accepted, "accepted"},
			{order.Picked, "picked"},
			{order.EnRoute, "en_route"},
			{order.Delivered, "delivered"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Assigned, order.Accepted, order.Picked,
			order.EnRoute, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized strings", func(t *testing.T) {
		_, err := order.StatusFromString("in_flight")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status")
	})
}

func TestStatus_AdvanceTo(t *testing.T) {
	t.Run("should allow only the immediate successor", func(t *testing.T) {
		sequence := []order.Status{
			order.Assigned, order.Accepted, order.Picked, order.EnRoute, order.Delivered,
		}

		for i := 0; i < len(sequence)-1; i++ {
			current := sequence[i]

			for j, target := range sequence {
				next, err := current.AdvanceTo(target)

				if j == i+1 {
					require.NoError(t, err, "%s -> %s must be legal", current, target)
					assert.Equal(t, target, next)
				} else {
					require.Error(t, err, "%s -> %s must be illegal", current, target)
					assert.ErrorIs(t, err, order.ErrInvalidTransition)
				}
			}
		}
	})

	t.Run("should not advance from terminal statuses", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := terminal.AdvanceTo(order.Accepted)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("should never skip a step", func(t *testing.T) {
		_, err := order.Accepted.AdvanceTo(order.EnRoute)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should never move backwards", func(t *testing.T) {
		_, err := order.EnRoute.AdvanceTo(order.Picked)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should return the unique successor", func(t *testing.T) {
		next, err := order.Picked.Next()

		require.NoError(t, err)
		assert.Equal(t, order.EnRoute, next)
	})

	t.Run("should fail for terminal statuses", func(t *testing.T) {
		_, err := order.Delivered.Next()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should accept only from assigned", func(t *testing.T) {
		next, err := order.Assigned.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, next)
	})

	t.Run("should reject accept from any other status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Accepted, order.Picked, order.EnRoute, order.Delivered, order.Cancelled,
		} {
			_, err := status.Accept()

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from assigned and accepted", func(t *testing.T) {
		for _, status := range []order.Status{order.Assigned, order.Accepted} {
			next, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("should not cancel once picked", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Picked, order.EnRoute, order.Delivered, order.Cancelled,
		} {
			_, err := status.Cancel()

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark delivered and cancelled as terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())

		for _, status := range []order.Status{
			order.Assigned, order.Accepted, order.Picked, order.EnRoute,
		} {
			assert.False(t, status.IsTerminal())
		}
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("should describe the rejected edge", func(t *testing.T) {
		err := order.NewInvalidTransitionError(order.Assigned, order.Picked)

		assert.Contains(t, err.Error(), "assigned -> picked")
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}
