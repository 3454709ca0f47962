package commands

import (
	"errors"

	"riderhub/internal/pkg/guard"
)

var ErrRefreshSessionCommandIsNotConstructed = errors.New(
	"RefreshSessionCommand must be created via NewRefreshSessionCommand constructor",
)

// RefreshSessionCommand rotates the stored session using its refresh
// token. Run periodically by the session refresh job.
type RefreshSessionCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshSessionCommand creates a command to rotate the session.
func NewRefreshSessionCommand() RefreshSessionCommand {
	return RefreshSessionCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RefreshSessionCommand) Validate() error {
	return c.guard.Validate(ErrRefreshSessionCommandIsNotConstructed)
}
