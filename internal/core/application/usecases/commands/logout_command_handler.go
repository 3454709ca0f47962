package commands

import (
	"context"

	"riderhub/internal/core/ports"
)

// LogoutCommandHandler invalidates the session on the backend and wipes
// the local tokens. The local wipe happens even when the backend call
// fails, so the partner is never stuck signed in with a dead session.
type LogoutCommandHandler struct {
	gateway ports.BackendGateway
	secrets ports.SecretStore
}

// NewLogoutCommandHandler creates a handler for logout.
func NewLogoutCommandHandler(gateway ports.BackendGateway, secrets ports.SecretStore) LogoutCommandHandler {
	return LogoutCommandHandler{
		gateway: gateway,
		secrets: secrets,
	}
}

// Handle processes the logout command.
func (h LogoutCommandHandler) Handle(ctx context.Context, command LogoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	gatewayErr := h.gateway.Logout(ctx)

	if err := h.secrets.ClearSession(ctx); err != nil {
		return err
	}

	return gatewayErr
}
