package ports

import (
	"context"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"
)

// TicketRepository defines the persistence contract for support tickets.
type TicketRepository interface {
	// Add persists a new ticket aggregate with its responses.
	Add(ctx context.Context, aggregate *ticket.Ticket) error

	// Update persists changes to an existing ticket, including newly
	// appended responses.
	Update(ctx context.Context, aggregate *ticket.Ticket) error

	// Get retrieves a ticket aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error)

	// GetAll retrieves all tickets, newest first.
	GetAll(ctx context.Context) ([]*ticket.Ticket, error)
}
