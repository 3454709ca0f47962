package queries

import (
	"context"
	"database/sql"
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWalletQueryHandler reads the wallet balances from the database.
type GetWalletQueryHandler struct {
	db *gorm.DB
}

// NewGetWalletQueryHandler creates a handler for wallet queries.
func NewGetWalletQueryHandler(db *gorm.DB) GetWalletQueryHandler {
	return GetWalletQueryHandler{db: db}
}

// Handle executes the query against the single wallet row.
func (h GetWalletQueryHandler) Handle(
	ctx context.Context,
	query GetWalletQuery,
) (GetWalletQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWalletQueryResponse{}, err
	}

	var balance, pending, total, cash decimal.Decimal
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			balance,
			pending_amount,
			total_earnings,
			cash_in_hand
		FROM wallets
		LIMIT 1
	`).Row()

	if err := row.Scan(&balance, &pending, &total, &cash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetWalletQueryResponse{}, errs.NewObjectNotFoundError("wallet", "signed-in partner")
		}
		return GetWalletQueryResponse{}, err
	}

	response := GetWalletQueryResponse{}
	var err error

	if response.Balance, err = kernel.NewMoney(balance); err != nil {
		return GetWalletQueryResponse{}, err
	}
	if response.PendingAmount, err = kernel.NewMoney(pending); err != nil {
		return GetWalletQueryResponse{}, err
	}
	if response.TotalEarnings, err = kernel.NewMoney(total); err != nil {
		return GetWalletQueryResponse{}, err
	}
	if response.CashInHand, err = kernel.NewMoney(cash); err != nil {
		return GetWalletQueryResponse{}, err
	}

	return response, nil
}
