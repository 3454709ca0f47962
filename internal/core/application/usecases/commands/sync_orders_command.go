package commands

import (
	"errors"

	"riderhub/internal/pkg/guard"
)

var ErrSyncOrdersCommandIsNotConstructed = errors.New(
	"SyncOrdersCommand must be created via NewSyncOrdersCommand constructor",
)

// SyncOrdersCommand triggers a pull of newly assigned orders from the
// backend into the local active set. Run periodically by the sync job and
// on demand when the partner refreshes the order list.
type SyncOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncOrdersCommand creates a command to trigger order ingestion.
func NewSyncOrdersCommand() SyncOrdersCommand {
	return SyncOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SyncOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncOrdersCommandIsNotConstructed)
}
