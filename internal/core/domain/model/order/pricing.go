package order

import (
	"errors"
	"fmt"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when a Pricing was not created
// through the NewPricing factory.
var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing constructor")

// Pricing groups the monetary totals of an order: the item subtotal, the
// delivery fee earned by the partner, and the grand total charged to the
// customer. The total must equal subtotal plus delivery fee exactly.
type Pricing struct { //nolint:recvcheck //using for validation
	subtotal    kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money

	guard guard.ConstructorGuard
}

// NewPricing creates a validated pricing breakdown.
// Fails when total differs from subtotal + deliveryFee.
func NewPricing(subtotal, deliveryFee, total kernel.Money) (Pricing, error) {
	if !subtotal.Add(deliveryFee).IsEqual(total) {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("pricing is inconsistent",
			fmt.Errorf("total %s does not equal subtotal %s plus delivery fee %s",
				total, subtotal, deliveryFee))
	}

	return Pricing{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Pricing was created via NewPricing.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// Subtotal returns the sum of line item prices.
func (p Pricing) Subtotal() kernel.Money {
	return p.subtotal
}

// DeliveryFee returns the partner's earning for completing the order.
func (p Pricing) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// Total returns the amount charged to the customer.
func (p Pricing) Total() kernel.Money {
	return p.total
}
