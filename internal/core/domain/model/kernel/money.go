package kernel

import (
	"fmt"

	"riderhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative is returned when an operation would produce a negative
// monetary amount. All amounts in the system are non-negative; signed effects
// (payouts, penalties) are expressed as explicit subtractions that must not
// underflow.
var ErrMoneyIsNegative = errs.NewValueIsInvalidError("monetary amount must not be negative")

// Money represents a non-negative monetary amount in the platform currency.
//
// Amounts are held as exact decimals so that accumulating many small earnings
// never drifts the way binary floating point would. Rounding to two decimal
// places happens only at the display and serialization boundary; internal
// arithmetic is exact.
//
// Unlike most kernel value objects, the zero value of Money is valid and
// represents an amount of zero. This keeps aggregate initialization and
// summation ergonomic.
//
// Example:
//
//	fee, _ := kernel.NewMoneyFromFloat(49.50)
//	tip, _ := kernel.NewMoneyFromFloat(10)
//	total := fee.Add(tip)
//	fmt.Println(total) // 59.50
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from an exact decimal amount.
// Returns ErrMoneyIsNegative for negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount.
// The float is converted through its shortest decimal representation, so
// literals like 49.50 survive the conversion exactly.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a decimal string such as "123.45" into a Money.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("monetary amount", err)
	}
	return NewMoney(d)
}

// Decimal returns the exact underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m minus other. Fails with ErrMoneyIsNegative when the
// subtraction would underflow below zero.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrMoneyIsNegative
	}
	return Money{amount: result}, nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// LessThan reports whether m is below other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual reports whether two amounts are numerically equal.
// Trailing zeros are insignificant: 50 and 50.00 compare equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount rounded to two decimal places, e.g. "59.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON serializes the amount as a plain JSON number with two decimal
// places, matching the wire format of the backend contract.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.StringFixed(2)), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("monetary amount %q", s), err)
	}
	if d.IsNegative() {
		return ErrMoneyIsNegative
	}
	m.amount = d
	return nil
}
