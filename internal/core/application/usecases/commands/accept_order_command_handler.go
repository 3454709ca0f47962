package commands

import (
	"context"
	"time"

	"riderhub/internal/core/ports"
)

// AcceptOrderCommandHandler applies the accept transition and mirrors it to
// the backend. The local change is tentative until the backend confirms:
// the transaction only commits after ConfirmAccept succeeds, so a rejected
// or failed confirmation leaves the order assigned.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.BackendGateway
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, gateway ports.BackendGateway) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the accept order command.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
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

	if err = aggregate.Accept(time.Now()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.ConfirmAccept(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
