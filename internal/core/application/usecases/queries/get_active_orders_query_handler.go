package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the partner's current workload from
// the database. Uses direct SQL for the read side of the CQRS split.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns orders in assigned, accepted, picked
// or en_route status, oldest first so the longest waiting order is on top.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			status,
			restaurant_name,
			delivery_address,
			total,
			delivery_fee,
			payment_method,
			created_at,
			delivered_at,
			cancel_reason
		FROM orders
		WHERE status IN ('assigned', 'accepted', 'picked', 'en_route')
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderSummaries(rows)
	if err != nil {
		return nil, err
	}

	return orders, rows.Err()
}
