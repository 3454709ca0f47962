package queries

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/guard"
)

var ErrGetWalletQueryIsNotConstructed = errors.New(
	"GetWalletQuery must be created via NewGetWalletQuery constructor",
)

// GetWalletQuery retrieves the wallet balances of the signed-in partner.
type GetWalletQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWalletQuery creates a query to retrieve the wallet.
func NewGetWalletQuery() GetWalletQuery {
	return GetWalletQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWalletQuery) Validate() error {
	return q.guard.Validate(ErrGetWalletQueryIsNotConstructed)
}

// GetWalletQueryResponse represents the wallet balances.
type GetWalletQueryResponse struct {
	Balance       kernel.Money
	PendingAmount kernel.Money
	TotalEarnings kernel.Money
	CashInHand    kernel.Money
}
