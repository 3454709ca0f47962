package services

import (
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
)

// EarningsSummary holds the delivery-fee totals of the three standard
// reporting buckets. The buckets overlap: an order delivered today counts
// in all three.
type EarningsSummary struct {
	Today kernel.Money
	Week  kernel.Money
	Month kernel.Money
}

// EarningsCalculator is a pure domain service that rolls delivered orders
// up into the day, week, and month earnings buckets shown on the earnings
// screen.
//
// Bucket boundaries, all in the location of now:
//   - today starts at midnight of now
//   - week starts at midnight of the most recent Sunday (a Sunday is its
//     own week start)
//   - month starts at midnight of the 1st of the month
//
// Each bucket includes its start instant and everything up to and
// including now. Orders outside [start, now] do not count.
type EarningsCalculator struct{}

// NewEarningsCalculator creates a new EarningsCalculator instance.
func NewEarningsCalculator() EarningsCalculator {
	return EarningsCalculator{}
}

// Rollup sums the delivery fees of delivered orders into the three
// buckets. Non-delivered orders are skipped; the result is deterministic
// and independent of input order.
func (e EarningsCalculator) Rollup(orders []*order.Order, now time.Time) (EarningsSummary, error) {
	summary := EarningsSummary{
		Today: kernel.ZeroMoney(),
		Week:  kernel.ZeroMoney(),
		Month: kernel.ZeroMoney(),
	}

	dayStart := startOfDay(now)
	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return EarningsSummary{}, err
		}
		if o.Status() != order.Delivered {
			continue
		}

		at := o.CreatedAt()
		if at.After(now) {
			continue
		}

		fee := o.DeliveryFee()
		if !at.Before(dayStart) {
			summary.Today = summary.Today.Add(fee)
		}
		if !at.Before(weekStart) {
			summary.Week = summary.Week.Add(fee)
		}
		if !at.Before(monthStart) {
			summary.Month = summary.Month.Add(fee)
		}
	}

	return summary, nil
}

// RollupWindowStart returns the earliest instant any bucket of a rollup
// at now reaches back to. Readers fetching orders for Rollup can restrict
// themselves to orders created at or after it.
func RollupWindowStart(now time.Time) time.Time {
	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)
	if weekStart.Before(monthStart) {
		return weekStart
	}
	return monthStart
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
