package commands

import (
	"errors"

	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

var ErrSendOTPCommandIsNotConstructed = errors.New(
	"SendOTPCommand must be created via NewSendOTPCommand constructor",
)

// SendOTPCommand asks the backend to send a one-time login code to the
// partner's phone.
type SendOTPCommand struct { //nolint:recvcheck //using for validation
	phone string

	guard guard.ConstructorGuard
}

// NewSendOTPCommand creates a command to request a one-time code.
func NewSendOTPCommand(phone string) (SendOTPCommand, error) {
	cmd := SendOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPhone(phone); err != nil {
		return SendOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOTPCommand) Validate() error {
	return c.guard.Validate(ErrSendOTPCommandIsNotConstructed)
}

// Phone returns the phone number to send the code to.
func (c SendOTPCommand) Phone() string {
	return c.phone
}

func (c *SendOTPCommand) setPhone(phone string) error {
	if err := validate.Phone(phone); err != nil {
		return err
	}

	c.phone = phone
	return nil
}
