package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

var ErrReplyTicketCommandIsNotConstructed = errors.New(
	"ReplyTicketCommand must be created via NewReplyTicketCommand constructor",
)

// ReplyTicketCommand appends a partner message to a ticket's thread.
type ReplyTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	message  string

	guard guard.ConstructorGuard
}

// NewReplyTicketCommand creates a command to reply to a ticket.
func NewReplyTicketCommand(ticketID kernel.UUID, message string) (ReplyTicketCommand, error) {
	cmd := ReplyTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setMessage(message),
	); err != nil {
		return ReplyTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplyTicketCommand) Validate() error {
	return c.guard.Validate(ErrReplyTicketCommandIsNotConstructed)
}

// TicketID returns the ticket to reply to.
func (c ReplyTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// Message returns the reply text.
func (c ReplyTicketCommand) Message() string {
	return c.message
}

func (c *ReplyTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}

	c.ticketID = ticketID
	return nil
}

func (c *ReplyTicketCommand) setMessage(message string) error {
	if err := validate.Required("message", message); err != nil {
		return err
	}

	c.message = message
	return nil
}
