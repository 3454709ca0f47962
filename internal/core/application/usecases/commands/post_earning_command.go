package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/pkg/guard"
)

var ErrPostEarningCommandIsNotConstructed = errors.New(
	"PostEarningCommand must be created via NewPostEarningCommand constructor",
)

// PostEarningCommand records an earnings event (tip, bonus, penalty, or an
// out-of-band delivery fee) against the wallet and its ledger.
type PostEarningCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money
	txType  wallet.Type
	method  wallet.Method

	guard guard.ConstructorGuard
}

// NewPostEarningCommand creates a command to post an earning.
func NewPostEarningCommand(
	orderID kernel.UUID,
	amount kernel.Money,
	txType wallet.Type,
	method wallet.Method,
) (PostEarningCommand, error) {
	cmd := PostEarningCommand{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setType(txType),
		cmd.setMethod(method),
	); err != nil {
		return PostEarningCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostEarningCommand) Validate() error {
	return c.guard.Validate(ErrPostEarningCommandIsNotConstructed)
}

// OrderID returns the order the earning relates to.
func (c PostEarningCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the earning amount.
func (c PostEarningCommand) Amount() kernel.Money {
	return c.amount
}

// Type returns the earnings classification.
func (c PostEarningCommand) Type() wallet.Type {
	return c.txType
}

// Method returns how the earning was settled.
func (c PostEarningCommand) Method() wallet.Method {
	return c.method
}

func (c *PostEarningCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PostEarningCommand) setType(txType wallet.Type) error {
	if err := txType.Validate(); err != nil {
		return err
	}

	c.txType = txType
	return nil
}

func (c *PostEarningCommand) setMethod(method wallet.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
