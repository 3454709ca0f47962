package commands

import (
	"context"
	"time"

	"riderhub/internal/core/ports"
)

// RejectOrderCommandHandler applies the terminal reject transition and
// mirrors it to the backend before committing.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.BackendGateway
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory, gateway ports.BackendGateway) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the reject order command.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
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

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Reject(command.Reason(), time.Now()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.ConfirmReject(ctx, aggregate.ID(), command.Reason()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
