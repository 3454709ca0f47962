package commands

import (
	"context"

	"riderhub/internal/core/ports"
)

// SetAvailabilityCommandHandler flips the online flag and pushes the new
// profile state to the backend before committing.
type SetAvailabilityCommandHandler struct {
	uowFactory AccountUoWFactory
	gateway    ports.BackendGateway
}

// NewSetAvailabilityCommandHandler creates a handler for availability
// changes.
func NewSetAvailabilityCommandHandler(
	uowFactory AccountUoWFactory,
	gateway ports.BackendGateway,
) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the set availability command.
func (h SetAvailabilityCommandHandler) Handle(ctx context.Context, command SetAvailabilityCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	profile, err := accountRepo.GetProfile(ctx)
	if err != nil {
		return err
	}

	profile.SetOnline(command.Online())

	if err = accountRepo.UpdateProfile(ctx, profile); err != nil {
		return err
	}

	if err = h.gateway.UpdateProfile(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
