// Package queries contains the read side of the application. Handlers
// bypass the aggregates and read their projections straight from the
// database, returning flat read models shaped for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all orders the partner is currently
// working on, in any non-terminal status, oldest first.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve active orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is the read model shared by the active order and
// history queries.
type OrderSummaryResponse struct {
	ID              kernel.UUID
	Number          string
	Status          string
	RestaurantName  string
	DeliveryAddress string
	Total           kernel.Money
	DeliveryFee     kernel.Money
	PaymentMethod   string
	CreatedAt       time.Time
	DeliveredAt     *time.Time
	CancelReason    string
}
