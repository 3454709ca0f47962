package commands

import (
	"errors"

	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

var (
	ErrLoginWithOTPCommandIsNotConstructed = errors.New(
		"LoginWithOTPCommand must be created via NewLoginWithOTPCommand constructor",
	)

	// ErrOTPCodeIsInvalid is returned when the submitted code is not a
	// six-digit string.
	ErrOTPCodeIsInvalid = errors.New("otp code must be 6 digits")
)

const otpCodeLength = 6

// LoginWithOTPCommand represents a one-time code login attempt.
type LoginWithOTPCommand struct { //nolint:recvcheck //using for validation
	phone string
	code  string

	guard guard.ConstructorGuard
}

// NewLoginWithOTPCommand creates a command to log in with a one-time code.
func NewLoginWithOTPCommand(phone, code string) (LoginWithOTPCommand, error) {
	cmd := LoginWithOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPhone(phone),
		cmd.setCode(code),
	); err != nil {
		return LoginWithOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginWithOTPCommand) Validate() error {
	return c.guard.Validate(ErrLoginWithOTPCommandIsNotConstructed)
}

// Phone returns the login phone number.
func (c LoginWithOTPCommand) Phone() string {
	return c.phone
}

// Code returns the submitted one-time code.
func (c LoginWithOTPCommand) Code() string {
	return c.code
}

func (c *LoginWithOTPCommand) setPhone(phone string) error {
	if err := validate.Phone(phone); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *LoginWithOTPCommand) setCode(code string) error {
	if len(code) != otpCodeLength {
		return ErrOTPCodeIsInvalid
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrOTPCodeIsInvalid
		}
	}

	c.code = code
	return nil
}
