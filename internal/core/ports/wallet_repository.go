package ports

import (
	"context"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for the single wallet
// aggregate of the signed-in partner.
type WalletRepository interface {
	// Add persists a freshly created wallet.
	Add(ctx context.Context, aggregate *wallet.Wallet) error

	// Update persists changes to the wallet.
	Update(ctx context.Context, aggregate *wallet.Wallet) error

	// Get retrieves the wallet.
	Get(ctx context.Context) (*wallet.Wallet, error)
}

// LedgerFilter narrows transaction queries. Zero-value fields are ignored.
type LedgerFilter struct {
	Type   wallet.Type
	Status wallet.Status
	From   time.Time
	To     time.Time
}

// LedgerRepository defines the persistence contract for the append-only
// earnings ledger.
type LedgerRepository interface {
	// Add appends a ledger entry. Entries are never updated or deleted.
	Add(ctx context.Context, tx wallet.Transaction) error

	// Get retrieves a ledger entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (wallet.Transaction, error)

	// GetAll retrieves entries matching the filter, newest first.
	GetAll(ctx context.Context, filter LedgerFilter) ([]wallet.Transaction, error)

	// ExistsForOrder reports whether an entry of the given type has already
	// been recorded for the order. Guards against double-posting on
	// repeated delivery confirmations.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID, txType wallet.Type) (bool, error)
}
