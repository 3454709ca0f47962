package validate_test

import (
	"testing"

	"riderhub/internal/pkg/errs"
	"riderhub/internal/pkg/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	t.Run("should accept non-empty values", func(t *testing.T) {
		assert.NoError(t, validate.Required("name", "Asha"))
	})

	t.Run("should reject empty and whitespace-only values", func(t *testing.T) {
		for _, v := range []string{"", "   ", "\t\n"} {
			err := validate.Required("name", v)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestEmail(t *testing.T) {
	t.Run("should accept valid addresses", func(t *testing.T) {
		for _, v := range []string{
			"partner@example.com",
			"a.sharma+work@mail.co.in",
		} {
			assert.NoError(t, validate.Email(v), v)
		}
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, v := range []string{
			"partner",
			"partner@",
			"@example.com",
			"partner@example",
			"partner example.com",
		} {
			err := validate.Email(v)
			require.Error(t, err, v)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestPhone(t *testing.T) {
	t.Run("should accept valid numbers", func(t *testing.T) {
		for _, v := range []string{
			"+91 98765 43210",
			"9876543210",
			"+1-202-555-0143",
		} {
			assert.NoError(t, validate.Phone(v), v)
		}
	})

	t.Run("should reject malformed numbers", func(t *testing.T) {
		for _, v := range []string{
			"12345",
			"phone",
			"+91 98765 4321x",
		} {
			err := validate.Phone(v)
			require.Error(t, err, v)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestLengthBetween(t *testing.T) {
	t.Run("should accept lengths inside the bounds", func(t *testing.T) {
		assert.NoError(t, validate.LengthBetween("title", "abc", 3, 5))
		assert.NoError(t, validate.LengthBetween("title", "abcde", 3, 5))
	})

	t.Run("should reject lengths outside the bounds", func(t *testing.T) {
		for _, v := range []string{"ab", "abcdef"} {
			err := validate.LengthBetween("title", v, 3, 5)
			require.Error(t, err, v)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should count runes, not bytes", func(t *testing.T) {
		assert.NoError(t, validate.LengthBetween("title", "héllo", 5, 5))
	})
}
