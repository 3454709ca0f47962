package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/pkg/guard"
)

var ErrRequestPayoutCommandIsNotConstructed = errors.New(
	"RequestPayoutCommand must be created via NewRequestPayoutCommand constructor",
)

// RequestPayoutCommand asks the platform to pay out part of the wallet
// balance.
type RequestPayoutCommand struct { //nolint:recvcheck //using for validation
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewRequestPayoutCommand creates a command to request a payout.
func NewRequestPayoutCommand(amount kernel.Money) (RequestPayoutCommand, error) {
	cmd := RequestPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAmount(amount); err != nil {
		return RequestPayoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPayoutCommand) Validate() error {
	return c.guard.Validate(ErrRequestPayoutCommandIsNotConstructed)
}

// Amount returns the requested payout amount.
func (c RequestPayoutCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RequestPayoutCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return wallet.ErrPayoutAmountIsInvalid
	}

	c.amount = amount
	return nil
}
