package queries

import (
	"context"
	"time"

	"riderhub/internal/core/domain/services"
	"riderhub/internal/core/ports"
)

// GetEarningsSummaryQueryHandler rolls delivered orders up into the
// earnings buckets. Unlike the other read handlers it goes through the
// order repository, because the rollup is domain logic owned by the
// EarningsCalculator rather than a plain projection.
type GetEarningsSummaryQueryHandler struct {
	orders     ports.OrderRepository
	calculator services.EarningsCalculator
}

// NewGetEarningsSummaryQueryHandler creates a handler for earnings
// summary queries.
func NewGetEarningsSummaryQueryHandler(
	orders ports.OrderRepository,
	calculator services.EarningsCalculator,
) GetEarningsSummaryQueryHandler {
	return GetEarningsSummaryQueryHandler{
		orders:     orders,
		calculator: calculator,
	}
}

// Handle executes the query. Only delivered orders created inside the
// widest bucket are fetched and rolled up.
func (h GetEarningsSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetEarningsSummaryQuery,
) (GetEarningsSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEarningsSummaryQueryResponse{}, err
	}

	now := time.Now()
	delivered, err := h.orders.GetDeliveredSince(ctx, services.RollupWindowStart(now))
	if err != nil {
		return GetEarningsSummaryQueryResponse{}, err
	}

	summary, err := h.calculator.Rollup(delivered, now)
	if err != nil {
		return GetEarningsSummaryQueryResponse{}, err
	}

	return GetEarningsSummaryQueryResponse{
		Today: summary.Today,
		Week:  summary.Week,
		Month: summary.Month,
	}, nil
}
