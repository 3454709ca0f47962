package wallet

import (
	"errors"
	"fmt"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
)

// ErrTransactionIsNotConstructed is returned when a Transaction was not
// created through the NewTransaction factory.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction constructor")

// Type classifies what an earnings ledger entry represents.
type Type int

const (
	// TypeUnknown represents an invalid or undefined transaction type.
	TypeUnknown Type = iota

	// TypeDeliveryFee is the base earning posted when an order is delivered.
	TypeDeliveryFee

	// TypeTip is a customer tip.
	TypeTip

	// TypeBonus is a platform incentive.
	TypeBonus

	// TypePenalty is a platform deduction (late delivery, order issue).
	TypePenalty
)

func getTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeDeliveryFee: "delivery_fee",
		TypeTip:         "tip",
		TypeBonus:       "bonus",
		TypePenalty:     "penalty",
	}
}

// TypeFromString parses the wire representation of a transaction type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("transaction type is invalid",
		fmt.Errorf("%q is not a valid transaction type", s))
}

// Validate checks the type is one of the defined values.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transaction type is invalid",
			fmt.Errorf("%d is not a valid transaction type", t))
	}
	return nil
}

// String returns the wire name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Method identifies how an earning was settled towards the partner.
type Method int

const (
	// MethodUnknown represents an invalid or undefined settlement method.
	MethodUnknown Method = iota

	// MethodCash means the partner already holds the money as cash in hand.
	MethodCash

	// MethodDigital means the platform credits the wallet balance.
	MethodDigital
)

func getMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCash:    "cash",
		MethodDigital: "digital",
	}
}

// MethodFromString parses the wire representation of a settlement method.
func MethodFromString(s string) (Method, error) {
	for m, str := range getMethodStrings() {
		if str == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("settlement method is invalid",
		fmt.Errorf("%q is not a valid settlement method", s))
}

// Validate checks the method is one of the defined values.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("settlement method is invalid",
			fmt.Errorf("%d is not a valid settlement method", m))
	}
	return nil
}

// IsCash reports whether the earning is held as cash by the partner.
func (m Method) IsCash() bool {
	return m == MethodCash
}

// String returns the wire name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Status tracks whether the platform has paid out a ledger entry.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the entry awaits settlement by the platform.
	StatusPending

	// StatusPaid means the entry has been settled.
	StatusPaid
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending: "pending",
		StatusPaid:    "paid",
	}
}

// StatusFromString parses the wire representation of a transaction status.
func StatusFromString(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("transaction status is invalid",
		fmt.Errorf("%q is not a valid transaction status", s))
}

// Validate checks the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transaction status is invalid",
			fmt.Errorf("%d is not a valid transaction status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Transaction is an immutable ledger entry recording a single earnings
// event. Entries are only ever appended to the chronological log; corrections
// arrive as new entries (e.g. a penalty), never as edits.
type Transaction struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    kernel.Money
	txType    Type
	method    Method
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewTransaction creates a validated ledger entry.
// The amount is non-negative by construction of kernel.Money; the sign of the
// effect is carried by the type, not the amount.
func NewTransaction(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	txType Type,
	method Method,
	status Status,
	createdAt time.Time,
) (Transaction, error) {
	tx := Transaction{
		amount:        amount,
		isConstructed: true,
	}

	if err := errors.Join(
		tx.setID(id),
		tx.setOrderID(orderID),
		tx.setType(txType),
		tx.setMethod(method),
		tx.setStatus(status),
		tx.setCreatedAt(createdAt),
	); err != nil {
		return Transaction{}, err
	}

	return tx, nil
}

// Validate ensures the Transaction was created via NewTransaction.
func (t Transaction) Validate() error {
	if !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the ledger entry identifier.
func (t Transaction) ID() kernel.UUID {
	return t.id
}

// OrderID returns the order this earning relates to.
func (t Transaction) OrderID() kernel.UUID {
	return t.orderID
}

// Amount returns the non-negative monetary amount of the entry.
func (t Transaction) Amount() kernel.Money {
	return t.amount
}

// Type returns the earnings classification of the entry.
func (t Transaction) Type() Type {
	return t.txType
}

// Method returns how the earning was settled.
func (t Transaction) Method() Method {
	return t.method
}

// Status returns the payout status of the entry.
func (t Transaction) Status() Status {
	return t.status
}

// CreatedAt returns when the entry was recorded.
func (t Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Transaction) setType(txType Type) error {
	if err := txType.Validate(); err != nil {
		return err
	}
	t.txType = txType
	return nil
}

func (t *Transaction) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	t.method = method
	return nil
}

func (t *Transaction) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Transaction) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	t.createdAt = createdAt
	return nil
}
