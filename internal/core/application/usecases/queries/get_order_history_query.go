package queries

import (
	"errors"
	"time"

	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves finished orders, newest first. The status
// and date filters are optional; zero values are ignored.
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	status order.Status
	from   time.Time
	to     time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query. Status may be
// order.Unknown to include both delivered and cancelled orders; a
// non-terminal status is rejected.
func NewGetOrderHistoryQuery(status order.Status, from, to time.Time) (GetOrderHistoryQuery, error) {
	query := GetOrderHistoryQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Status returns the status filter, or order.Unknown when unset.
func (q GetOrderHistoryQuery) Status() order.Status {
	return q.status
}

// From returns the lower creation-time bound, or zero when unset.
func (q GetOrderHistoryQuery) From() time.Time {
	return q.from
}

// To returns the upper creation-time bound, or zero when unset.
func (q GetOrderHistoryQuery) To() time.Time {
	return q.to
}

func (q *GetOrderHistoryQuery) setStatus(status order.Status) error {
	if status == order.Unknown {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}
	if !status.IsTerminal() {
		return errs.NewValueIsInvalidError("history status filter")
	}

	q.status = status
	return nil
}
