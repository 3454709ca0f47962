package commands

import (
	"errors"

	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// ErrPasswordIsRequired is returned when attempting to log in without a password.
var ErrPasswordIsRequired = errors.New("password is required")

// LoginCommand represents a password login attempt.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command with validated credentials.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the login password.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setEmail(email string) error {
	if err := validate.Email(email); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
