package queries

import (
	"context"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/ticket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTicketsQueryHandler reads the support ticket inbox from the database.
type GetTicketsQueryHandler struct {
	db *gorm.DB
}

// NewGetTicketsQueryHandler creates a handler for ticket inbox queries.
func NewGetTicketsQueryHandler(db *gorm.DB) GetTicketsQueryHandler {
	return GetTicketsQueryHandler{db: db}
}

// Handle executes the query. Returns tickets matching the filter, newest
// first, each with its response count.
func (h GetTicketsQueryHandler) Handle(
	ctx context.Context,
	query GetTicketsQuery,
) ([]GetTicketsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			t.id,
			t.title,
			t.category,
			t.priority,
			t.status,
			t.order_id,
			COUNT(r.id) AS response_count,
			t.created_at,
			t.updated_at
		FROM tickets t
		LEFT JOIN ticket_responses r ON r.ticket_id = t.id
	`
	args := make([]any, 0, 1)

	if query.Status() != ticket.StatusUnknown {
		sqlQuery += " WHERE t.status = ?"
		args = append(args, query.Status().String())
	}

	sqlQuery += `
		GROUP BY t.id
		ORDER BY t.created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]GetTicketsQueryResponse, 0)

	for rows.Next() {
		var entry GetTicketsQueryResponse
		var id uuid.UUID
		var orderID *uuid.UUID
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&entry.Title,
			&entry.Category,
			&entry.Priority,
			&entry.Status,
			&orderID,
			&entry.ResponseCount,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		if orderID != nil {
			linked, idErr := kernel.UUIDFromBytes((*orderID)[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.OrderID = &linked
		}

		entry.CreatedAt = createdAt
		entry.UpdatedAt = updatedAt
		tickets = append(tickets, entry)
	}

	return tickets, rows.Err()
}
