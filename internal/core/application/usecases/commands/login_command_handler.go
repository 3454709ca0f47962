package commands

import (
	"context"

	"riderhub/internal/core/ports"
)

// LoginCommandHandler exchanges credentials for a session and persists it
// in the secret store. The session is only stored after the backend
// accepted the credentials.
type LoginCommandHandler struct {
	gateway ports.BackendGateway
	secrets ports.SecretStore
}

// NewLoginCommandHandler creates a handler for password logins.
func NewLoginCommandHandler(gateway ports.BackendGateway, secrets ports.SecretStore) LoginCommandHandler {
	return LoginCommandHandler{
		gateway: gateway,
		secrets: secrets,
	}
}

// Handle processes the login command.
func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.gateway.Login(ctx, ports.Credentials{
		Email:    command.Email(),
		Password: command.Password(),
	})
	if err != nil {
		return err
	}

	return h.secrets.SaveSession(ctx, session)
}
