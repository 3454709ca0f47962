package commands

import (
	"context"

	"riderhub/internal/core/ports"
)

// UpdateProfileCommandHandler applies profile changes locally and pushes
// them to the backend before committing.
type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
	gateway    ports.BackendGateway
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(
	uowFactory AccountUoWFactory,
	gateway ports.BackendGateway,
) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the update profile command.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, command UpdateProfileCommand) error {
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

	if err = profile.UpdateDetails(
		command.Name(), command.Email(), command.Phone(), command.VehicleNumber(),
	); err != nil {
		return err
	}

	if err = profile.ChangeVehicleType(command.VehicleType()); err != nil {
		return err
	}

	if err = accountRepo.UpdateProfile(ctx, profile); err != nil {
		return err
	}

	if err = h.gateway.UpdateProfile(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
