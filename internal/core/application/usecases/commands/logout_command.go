package commands

import (
	"errors"

	"riderhub/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand ends the partner's session.
type LogoutCommand struct {
	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a command to log out.
func NewLogoutCommand() LogoutCommand {
	return LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}
