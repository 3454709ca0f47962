package queries

import (
	"database/sql"
	"time"

	"riderhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// scanOrderSummaries maps rows of the shared order projection into read
// models. The column order must match the SELECT lists of the order
// queries.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID
		var total, deliveryFee decimal.Decimal
		var deliveredAt *time.Time

		err := rows.Scan(
			&id,
			&summary.Number,
			&summary.Status,
			&summary.RestaurantName,
			&summary.DeliveryAddress,
			&total,
			&deliveryFee,
			&summary.PaymentMethod,
			&summary.CreatedAt,
			&deliveredAt,
			&summary.CancelReason,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		summary.Total = totalMoney

		feeMoney, moneyErr := kernel.NewMoney(deliveryFee)
		if moneyErr != nil {
			return nil, moneyErr
		}
		summary.DeliveryFee = feeMoney

		summary.DeliveredAt = deliveredAt
		orders = append(orders, summary)
	}

	return orders, nil
}
