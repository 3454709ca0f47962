// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the secret store, and
// the backend gateway. Implementations live under internal/adapters.
package ports

import (
	"context"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
)

// OrderHistoryFilter narrows history queries. Zero-value fields are
// ignored.
type OrderHistoryFilter struct {
	Status order.Status
	From   time.Time
	To     time.Time
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// rejected with errs.VersionIsInvalidError when the stored version is
	// not older than the aggregate's, so stale confirmations never
	// overwrite newer state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves orders in a non-terminal status, oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetHistory retrieves terminal orders matching the filter, newest
	// first.
	GetHistory(ctx context.Context, filter OrderHistoryFilter) ([]*order.Order, error)

	// GetDeliveredSince retrieves delivered orders created at or after the
	// given instant. Used by the earnings rollup.
	GetDeliveredSince(ctx context.Context, since time.Time) ([]*order.Order, error)
}
