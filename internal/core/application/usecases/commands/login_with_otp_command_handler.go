package commands

import (
	"context"

	"riderhub/internal/core/ports"
)

// LoginWithOTPCommandHandler exchanges a one-time code for a session and
// persists it in the secret store.
type LoginWithOTPCommandHandler struct {
	gateway ports.BackendGateway
	secrets ports.SecretStore
}

// NewLoginWithOTPCommandHandler creates a handler for one-time code logins.
func NewLoginWithOTPCommandHandler(gateway ports.BackendGateway, secrets ports.SecretStore) LoginWithOTPCommandHandler {
	return LoginWithOTPCommandHandler{
		gateway: gateway,
		secrets: secrets,
	}
}

// Handle processes the login with OTP command.
func (h LoginWithOTPCommandHandler) Handle(ctx context.Context, command LoginWithOTPCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.gateway.LoginWithOTP(ctx, command.Phone(), command.Code())
	if err != nil {
		return err
	}

	return h.secrets.SaveSession(ctx, session)
}
