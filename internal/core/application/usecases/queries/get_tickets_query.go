package queries

import (
	"errors"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"
	"riderhub/internal/pkg/guard"
)

var ErrGetTicketsQueryIsNotConstructed = errors.New(
	"GetTicketsQuery must be created via NewGetTicketsQuery constructor",
)

// GetTicketsQuery retrieves support tickets, newest first. The status
// filter is optional.
type GetTicketsQuery struct { //nolint:recvcheck //using for validation
	status ticket.Status

	guard guard.ConstructorGuard
}

// NewGetTicketsQuery creates a ticket query. Pass ticket.StatusUnknown to
// include tickets in every state.
func NewGetTicketsQuery(status ticket.Status) (GetTicketsQuery, error) {
	query := GetTicketsQuery{guard: guard.NewConstructorGuard()}

	if err := query.setStatus(status); err != nil {
		return GetTicketsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTicketsQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketsQueryIsNotConstructed)
}

// Status returns the status filter, or ticket.StatusUnknown when unset.
func (q GetTicketsQuery) Status() ticket.Status {
	return q.status
}

func (q *GetTicketsQuery) setStatus(status ticket.Status) error {
	if status == ticket.StatusUnknown {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// GetTicketsQueryResponse represents a ticket in the support inbox list.
type GetTicketsQueryResponse struct {
	ID            kernel.UUID
	Title         string
	Category      string
	Priority      string
	Status        string
	OrderID       *kernel.UUID
	ResponseCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
