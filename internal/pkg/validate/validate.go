package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"riderhub/internal/pkg/errs"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,17}[0-9]$`)
)

// Required fails when value is empty or whitespace-only.
func Required(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// Email checks the value is a plausible email address.
func Email(value string) error {
	if err := Required("email", value); err != nil {
		return err
	}
	if !emailPattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid",
			fmt.Errorf("%q is not a valid email address", value))
	}
	return nil
}

// Phone checks the value is a plausible phone number: an optional leading
// plus, then 8 to 19 characters of digits, spaces, and dashes.
func Phone(value string) error {
	if err := Required("phone", value); err != nil {
		return err
	}
	if !phonePattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause("phone is invalid",
			fmt.Errorf("%q is not a valid phone number", value))
	}
	return nil
}

// LengthBetween checks the rune length of value is within [minLen, maxLen].
func LengthBetween(paramName, value string, minLen, maxLen int) error {
	length := utf8.RuneCountInString(value)
	if length < minLen || length > maxLen {
		return errs.NewValueIsOutOfRangeError(paramName, length, minLen, maxLen)
	}
	return nil
}
