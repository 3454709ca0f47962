package commands

import (
	"context"

	"riderhub/internal/core/ports"
)

// SendOTPCommandHandler forwards a one-time code request to the backend.
type SendOTPCommandHandler struct {
	gateway ports.BackendGateway
}

// NewSendOTPCommandHandler creates a handler for one-time code requests.
func NewSendOTPCommandHandler(gateway ports.BackendGateway) SendOTPCommandHandler {
	return SendOTPCommandHandler{
		gateway: gateway,
	}
}

// Handle processes the send OTP command.
func (h SendOTPCommandHandler) Handle(ctx context.Context, command SendOTPCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.gateway.SendOTP(ctx, command.Phone())
}
