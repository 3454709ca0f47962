package commands

import (
	"errors"

	"riderhub/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

// SetAvailabilityCommand toggles whether the partner accepts new orders.
type SetAvailabilityCommand struct {
	online bool

	guard guard.ConstructorGuard
}

// NewSetAvailabilityCommand creates a command to toggle availability.
func NewSetAvailabilityCommand(online bool) SetAvailabilityCommand {
	return SetAvailabilityCommand{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}

// Online returns the requested availability.
func (c *SetAvailabilityCommand) Online() bool {
	return c.online
}
