package order

import (
	"fmt"

	"riderhub/internal/pkg/errs"
)

// PaymentMethod identifies how the customer pays for the order.
// Cash orders are collected by the partner on delivery and later routed to
// the cash-in-hand side of the wallet; Card and UPI settle digitally.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is collected from the customer at the door.
	PaymentCash

	// PaymentCard is a card payment settled by the platform.
	PaymentCard

	// PaymentUPI is a UPI payment settled by the platform.
	PaymentUPI
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCash: "cash",
		PaymentCard: "card",
		PaymentUPI:  "upi",
	}
}

// PaymentMethodFromString parses the wire representation used by the backend
// contract ("cash", "card", "upi").
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks the payment method is one of the defined values.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// IsCash reports whether the customer pays in cash on delivery.
func (p PaymentMethod) IsCash() bool {
	return p == PaymentCash
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}
