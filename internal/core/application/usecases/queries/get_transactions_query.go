package queries

import (
	"errors"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/pkg/guard"
)

var ErrGetTransactionsQueryIsNotConstructed = errors.New(
	"GetTransactionsQuery must be created via NewGetTransactionsQuery constructor",
)

// GetTransactionsQuery retrieves ledger entries, newest first. All filters
// are optional; zero values are ignored.
type GetTransactionsQuery struct { //nolint:recvcheck //using for validation
	txType wallet.Type
	status wallet.Status
	from   time.Time
	to     time.Time

	guard guard.ConstructorGuard
}

// NewGetTransactionsQuery creates a ledger query. Pass wallet.TypeUnknown
// or wallet.StatusUnknown to leave the respective filter unset.
func NewGetTransactionsQuery(
	txType wallet.Type,
	status wallet.Status,
	from, to time.Time,
) (GetTransactionsQuery, error) {
	query := GetTransactionsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setType(txType),
		query.setStatus(status),
	); err != nil {
		return GetTransactionsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTransactionsQuery) Validate() error {
	return q.guard.Validate(ErrGetTransactionsQueryIsNotConstructed)
}

// Type returns the type filter, or wallet.TypeUnknown when unset.
func (q GetTransactionsQuery) Type() wallet.Type {
	return q.txType
}

// Status returns the status filter, or wallet.StatusUnknown when unset.
func (q GetTransactionsQuery) Status() wallet.Status {
	return q.status
}

// From returns the lower creation-time bound, or zero when unset.
func (q GetTransactionsQuery) From() time.Time {
	return q.from
}

// To returns the upper creation-time bound, or zero when unset.
func (q GetTransactionsQuery) To() time.Time {
	return q.to
}

func (q *GetTransactionsQuery) setType(txType wallet.Type) error {
	if txType == wallet.TypeUnknown {
		return nil
	}

	if err := txType.Validate(); err != nil {
		return err
	}

	q.txType = txType
	return nil
}

func (q *GetTransactionsQuery) setStatus(status wallet.Status) error {
	if status == wallet.StatusUnknown {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}

// GetTransactionsQueryResponse represents a single ledger entry.
type GetTransactionsQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Type      string
	Method    string
	Status    string
	Amount    kernel.Money
	CreatedAt time.Time
}
