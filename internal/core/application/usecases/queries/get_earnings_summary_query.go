package queries

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/guard"
)

var ErrGetEarningsSummaryQueryIsNotConstructed = errors.New(
	"GetEarningsSummaryQuery must be created via NewGetEarningsSummaryQuery constructor",
)

// GetEarningsSummaryQuery retrieves the day, week, and month earnings
// totals shown on the earnings screen.
type GetEarningsSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEarningsSummaryQuery creates a query to retrieve the earnings
// summary.
func NewGetEarningsSummaryQuery() GetEarningsSummaryQuery {
	return GetEarningsSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEarningsSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsSummaryQueryIsNotConstructed)
}

// GetEarningsSummaryQueryResponse represents the rolled-up earnings.
type GetEarningsSummaryQueryResponse struct {
	Today kernel.Money
	Week  kernel.Money
	Month kernel.Money
}
