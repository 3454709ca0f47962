package commands

import (
	"context"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"
	"riderhub/internal/core/ports"
)

// ReplyTicketCommandHandler appends a partner response to a ticket and
// mirrors it to the backend before committing.
type ReplyTicketCommandHandler struct {
	uowFactory TicketUoWFactory
	gateway    ports.BackendGateway
}

// NewReplyTicketCommandHandler creates a handler for ticket replies.
func NewReplyTicketCommandHandler(uowFactory TicketUoWFactory, gateway ports.BackendGateway) ReplyTicketCommandHandler {
	return ReplyTicketCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the reply ticket command.
func (h ReplyTicketCommandHandler) Handle(ctx context.Context, command ReplyTicketCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	response, err := ticket.NewResponse(
		kernel.NewUUID(),
		ticket.AuthorPartner,
		command.Message(),
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

	ticketsRepo := uow.TicketRepository()

	aggregate, err := ticketsRepo.Get(ctx, command.TicketID())
	if err != nil {
		return err
	}

	if err = aggregate.AddResponse(response); err != nil {
		return err
	}

	if err = ticketsRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.gateway.ReplyTicket(ctx, aggregate.ID(), response); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
