package commands

import (
	"context"
	"errors"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/wallet"
)

// ErrEarningAlreadyPosted is returned when an earning of the same type has
// already been recorded for the order.
var ErrEarningAlreadyPosted = errors.New("earning already posted for this order")

// PostEarningCommandHandler appends a ledger entry and folds it into the
// wallet totals in one transaction. Posting is local only; the backend is
// the source of these events, so there is no confirmation round-trip.
type PostEarningCommandHandler struct {
	uowFactory EarningsUoWFactory
}

// NewPostEarningCommandHandler creates a handler for earnings postings.
func NewPostEarningCommandHandler(uowFactory EarningsUoWFactory) PostEarningCommandHandler {
	return PostEarningCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the post earning command.
func (h PostEarningCommandHandler) Handle(ctx context.Context, command PostEarningCommand) error {
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

	ledgerRepo := uow.LedgerRepository()

	exists, err := ledgerRepo.ExistsForOrder(ctx, command.OrderID(), command.Type())
	if err != nil {
		return err
	}
	if exists {
		return ErrEarningAlreadyPosted
	}

	tx, err := wallet.NewTransaction(
		kernel.NewUUID(),
		command.OrderID(),
		command.Amount(),
		command.Type(),
		command.Method(),
		wallet.StatusPending,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = ledgerRepo.Add(ctx, tx); err != nil {
		return err
	}

	walletRepo := uow.WalletRepository()

	w, err := walletRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = w.PostEarning(tx); err != nil {
		return err
	}

	if err = walletRepo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
