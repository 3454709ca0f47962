package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/pkg/guard"
)

var ErrSettlePayoutCommandIsNotConstructed = errors.New(
	"SettlePayoutCommand must be created via NewSettlePayoutCommand constructor",
)

// SettlePayoutCommand records that the platform reported a requested
// payout as settled.
type SettlePayoutCommand struct { //nolint:recvcheck //using for validation
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewSettlePayoutCommand creates a command to settle a payout.
func NewSettlePayoutCommand(amount kernel.Money) (SettlePayoutCommand, error) {
	cmd := SettlePayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAmount(amount); err != nil {
		return SettlePayoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettlePayoutCommand) Validate() error {
	return c.guard.Validate(ErrSettlePayoutCommandIsNotConstructed)
}

// Amount returns the settled amount.
func (c SettlePayoutCommand) Amount() kernel.Money {
	return c.amount
}

func (c *SettlePayoutCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return wallet.ErrPayoutAmountIsInvalid
	}

	c.amount = amount
	return nil
}
