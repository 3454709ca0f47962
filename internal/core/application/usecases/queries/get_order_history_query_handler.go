package queries

import (
	"context"

	"riderhub/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads finished orders from the database.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. Returns delivered and cancelled orders
// matching the filters, newest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
		WHERE status IN ('delivered', 'cancelled')
	`
	args := make([]any, 0, 3)

	if query.Status() != order.Unknown {
		sqlQuery += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if !query.From().IsZero() {
		sqlQuery += " AND created_at >= ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sqlQuery += " AND created_at <= ?"
		args = append(args, query.To())
	}

	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
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
