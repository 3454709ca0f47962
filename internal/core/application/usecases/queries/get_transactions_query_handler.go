package queries

import (
	"context"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTransactionsQueryHandler reads the earnings ledger from the database.
type GetTransactionsQueryHandler struct {
	db *gorm.DB
}

// NewGetTransactionsQueryHandler creates a handler for ledger queries.
func NewGetTransactionsQueryHandler(db *gorm.DB) GetTransactionsQueryHandler {
	return GetTransactionsQueryHandler{db: db}
}

// Handle executes the query. Returns ledger entries matching the filters,
// newest first.
func (h GetTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetTransactionsQuery,
) ([]GetTransactionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			order_id,
			tx_type,
			method,
			status,
			amount,
			created_at
		FROM transactions
		WHERE TRUE
	`
	args := make([]any, 0, 4)

	if query.Type() != wallet.TypeUnknown {
		sqlQuery += " AND tx_type = ?"
		args = append(args, query.Type().String())
	}
	if query.Status() != wallet.StatusUnknown {
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

	transactions := make([]GetTransactionsQueryResponse, 0)

	for rows.Next() {
		var entry GetTransactionsQueryResponse
		var id, orderID uuid.UUID
		var amount decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&entry.Type,
			&entry.Method,
			&entry.Status,
			&amount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if entry.Amount, err = kernel.NewMoney(amount); err != nil {
			return nil, err
		}
		entry.CreatedAt = createdAt

		transactions = append(transactions, entry)
	}

	return transactions, rows.Err()
}
