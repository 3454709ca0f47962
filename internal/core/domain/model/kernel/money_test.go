package kernel_test

import (
	"encoding/json"
	"testing"

	"riderhub/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.Equal(t, "100.00", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
		assert.True(t, m.IsZero())
	})

	t.Run("should treat zero value as zero amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("should preserve two-decimal literals exactly", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(49.50)

		require.NoError(t, err)
		assert.Equal(t, "49.50", m.String())
	})

	t.Run("should reject negative floats", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("123.45")

		require.NoError(t, err)
		assert.Equal(t, "123.45", m.String())
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("12,34")

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts exactly", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(0.10)
		b, _ := kernel.NewMoneyFromFloat(0.20)

		sum := a.Add(b)

		expected, _ := kernel.MoneyFromString("0.30")
		assert.True(t, sum.IsEqual(expected))
	})

	t.Run("should not drift over many small additions", func(t *testing.T) {
		increment, _ := kernel.NewMoneyFromFloat(0.10)

		total := kernel.ZeroMoney()
		for i := 0; i < 10000; i++ {
			total = total.Add(increment)
		}

		expected, _ := kernel.MoneyFromString("1000.00")
		assert.True(t, total.IsEqual(expected), "expected 1000.00, got %s", total)
	})

	t.Run("should subtract without underflow", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(200)
		b, _ := kernel.NewMoneyFromFloat(150)

		diff, err := a.Sub(b)

		require.NoError(t, err)
		assert.Equal(t, "50.00", diff.String())
	})

	t.Run("should fail when subtraction goes negative", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(50)
		b, _ := kernel.NewMoneyFromFloat(50.01)

		_, err := a.Sub(b)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})
}

func TestMoney_Comparisons(t *testing.T) {
	t.Run("should compare amounts numerically", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromFloat(99)
		b, _ := kernel.NewMoneyFromFloat(100)

		assert.True(t, a.LessThan(b))
		assert.True(t, b.GreaterThan(a))
		assert.False(t, a.IsEqual(b))
	})

	t.Run("should ignore trailing zeros in equality", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("50")
		b, _ := kernel.MoneyFromString("50.00")

		assert.True(t, a.IsEqual(b))
	})
}

func TestMoney_JSON(t *testing.T) {
	t.Run("should marshal as plain number with two decimals", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromFloat(59.5)

		data, err := json.Marshal(m)

		require.NoError(t, err)
		assert.Equal(t, "59.50", string(data))
	})

	t.Run("should unmarshal from number and quoted string", func(t *testing.T) {
		var fromNumber, fromString kernel.Money

		require.NoError(t, json.Unmarshal([]byte(`42.25`), &fromNumber))
		require.NoError(t, json.Unmarshal([]byte(`"42.25"`), &fromString))

		assert.True(t, fromNumber.IsEqual(fromString))
	})

	t.Run("should reject negative wire amounts", func(t *testing.T) {
		var m kernel.Money

		err := json.Unmarshal([]byte(`-10`), &m)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	})
}
