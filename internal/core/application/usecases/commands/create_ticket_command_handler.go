package commands

import (
	"context"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"
	"riderhub/internal/core/ports"
)

// CreateTicketCommandHandler opens a ticket locally and registers it with
// the backend before committing.
type CreateTicketCommandHandler struct {
	uowFactory TicketUoWFactory
	gateway    ports.BackendGateway
}

// NewCreateTicketCommandHandler creates a handler for ticket creation.
func NewCreateTicketCommandHandler(uowFactory TicketUoWFactory, gateway ports.BackendGateway) CreateTicketCommandHandler {
	return CreateTicketCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the create ticket command.
func (h CreateTicketCommandHandler) Handle(ctx context.Context, command CreateTicketCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := ticket.NewTicket(
		kernel.NewUUID(),
		command.Title(),
		command.Description(),
		command.Category(),
		command.Priority(),
		command.OrderID(),
		command.Images(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TicketRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.CreateTicket(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
