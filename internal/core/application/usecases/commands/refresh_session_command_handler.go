package commands

import (
	"context"

	"riderhub/internal/core/ports"
)

// RefreshSessionCommandHandler loads the stored session, exchanges its
// refresh token for a new session, and stores the result. The old session
// stays in place when the backend call fails.
type RefreshSessionCommandHandler struct {
	gateway ports.BackendGateway
	secrets ports.SecretStore
}

// NewRefreshSessionCommandHandler creates a handler for session rotation.
func NewRefreshSessionCommandHandler(
	gateway ports.BackendGateway,
	secrets ports.SecretStore,
) RefreshSessionCommandHandler {
	return RefreshSessionCommandHandler{
		gateway: gateway,
		secrets: secrets,
	}
}

// Handle processes the refresh session command.
func (h RefreshSessionCommandHandler) Handle(ctx context.Context, command RefreshSessionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.secrets.LoadSession(ctx)
	if err != nil {
		return err
	}

	renewed, err := h.gateway.RefreshSession(ctx, session.RefreshToken)
	if err != nil {
		return err
	}

	return h.secrets.SaveSession(ctx, renewed)
}
