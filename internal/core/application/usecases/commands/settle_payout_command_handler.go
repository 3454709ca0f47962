package commands

import (
	"context"
)

// SettlePayoutCommandHandler clears a settled amount from the pending
// payout. The settlement originates on the backend, so this is a local
// write only.
type SettlePayoutCommandHandler struct {
	uowFactory EarningsUoWFactory
}

// NewSettlePayoutCommandHandler creates a handler for payout settlements.
func NewSettlePayoutCommandHandler(uowFactory EarningsUoWFactory) SettlePayoutCommandHandler {
	return SettlePayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settle payout command.
func (h SettlePayoutCommandHandler) Handle(ctx context.Context, command SettlePayoutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	walletRepo := uow.WalletRepository()

	w, err := walletRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = w.SettlePayout(command.Amount()); err != nil {
		return err
	}

	if err = walletRepo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
