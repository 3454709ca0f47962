package commands

import (
	"context"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/core/domain/model/wallet"
	"riderhub/internal/core/ports"
)

// AdvanceOrderCommandHandler applies a lifecycle advance and mirrors it to
// the backend. Reaching delivered additionally posts the delivery fee to
// the wallet ledger and bumps the profile delivery counter, all in the
// same transaction, so the completion event is atomic with the transition.
type AdvanceOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
	gateway    ports.BackendGateway
}

// NewAdvanceOrderCommandHandler creates a handler for lifecycle advances.
func NewAdvanceOrderCommandHandler(
	uowFactory DeliveryUoWFactory,
	gateway ports.BackendGateway,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the advance order command.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) error {
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

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = aggregate.Advance(command.Next(), now, command.Location()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Status() == order.Delivered {
		if err = h.recordDelivery(ctx, uow, aggregate, now); err != nil {
			return err
		}
	}

	if err = h.gateway.ConfirmStatus(ctx, aggregate.ID(), aggregate.Status(), command.Location()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// recordDelivery posts the delivery fee and bumps the delivery counter.
// The ledger lookup makes the completion idempotent: a repeated delivered
// confirmation does not double-pay.
func (h AdvanceOrderCommandHandler) recordDelivery(
	ctx context.Context,
	uow DeliveryUoW,
	aggregate *order.Order,
	now time.Time,
) error {
	ledgerRepo := uow.LedgerRepository()

	exists, err := ledgerRepo.ExistsForOrder(ctx, aggregate.ID(), wallet.TypeDeliveryFee)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	method := wallet.MethodDigital
	if aggregate.PaymentMethod().IsCash() {
		method = wallet.MethodCash
	}

	tx, err := wallet.NewTransaction(
		kernel.NewUUID(),
		aggregate.ID(),
		aggregate.DeliveryFee(),
		wallet.TypeDeliveryFee,
		method,
		wallet.StatusPending,
		now,
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

	accountRepo := uow.AccountRepository()

	profile, err := accountRepo.GetProfile(ctx)
	if err != nil {
		return err
	}

	profile.RecordDelivery()
	return accountRepo.UpdateProfile(ctx, profile)
}
