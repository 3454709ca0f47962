package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"
	"riderhub/internal/pkg/guard"
)

var ErrCreateTicketCommandIsNotConstructed = errors.New(
	"CreateTicketCommand must be created via NewCreateTicketCommand constructor",
)

// CreateTicketCommand opens a support ticket. Field bounds are enforced by
// the ticket aggregate; the command only carries validated enums and the
// raw text.
type CreateTicketCommand struct { //nolint:recvcheck //using for validation
	title       string
	description string
	category    ticket.Category
	priority    ticket.Priority
	orderID     *kernel.UUID
	images      []string

	guard guard.ConstructorGuard
}

// NewCreateTicketCommand creates a command to open a support ticket.
func NewCreateTicketCommand(
	title string,
	description string,
	category ticket.Category,
	priority ticket.Priority,
	orderID *kernel.UUID,
	images []string,
) (CreateTicketCommand, error) {
	cmd := CreateTicketCommand{
		title:       title,
		description: description,
		images:      images,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategory(category),
		cmd.setPriority(priority),
		cmd.setOrderID(orderID),
	); err != nil {
		return CreateTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTicketCommand) Validate() error {
	return c.guard.Validate(ErrCreateTicketCommandIsNotConstructed)
}

// Title returns the ticket title.
func (c CreateTicketCommand) Title() string {
	return c.title
}

// Description returns the ticket description.
func (c CreateTicketCommand) Description() string {
	return c.description
}

// Category returns the ticket category.
func (c CreateTicketCommand) Category() ticket.Category {
	return c.category
}

// Priority returns the ticket priority.
func (c CreateTicketCommand) Priority() ticket.Priority {
	return c.priority
}

// OrderID returns the linked order, or nil.
func (c CreateTicketCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// Images returns the attached image references.
func (c CreateTicketCommand) Images() []string {
	return c.images
}

func (c *CreateTicketCommand) setCategory(category ticket.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateTicketCommand) setPriority(priority ticket.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateTicketCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
