package commands

import (
	"context"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/ports"
)

// RequestPayoutCommandHandler moves the requested amount from balance to
// pending and asks the backend to initiate the payout. The wallet rules
// run first against local state, then the backend confirms, then the
// transaction commits.
type RequestPayoutCommandHandler struct {
	uowFactory    EarningsUoWFactory
	gateway       ports.BackendGateway
	minimumPayout kernel.Money
}

// NewRequestPayoutCommandHandler creates a handler for payout requests.
// minimumPayout is the configured payout floor.
func NewRequestPayoutCommandHandler(
	uowFactory EarningsUoWFactory,
	gateway ports.BackendGateway,
	minimumPayout kernel.Money,
) RequestPayoutCommandHandler {
	return RequestPayoutCommandHandler{
		uowFactory:    uowFactory,
		gateway:       gateway,
		minimumPayout: minimumPayout,
	}
}

// Handle processes the request payout command.
func (h RequestPayoutCommandHandler) Handle(ctx context.Context, command RequestPayoutCommand) error {
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

	if err = w.RequestPayout(command.Amount(), h.minimumPayout); err != nil {
		return err
	}

	if err = walletRepo.Update(ctx, w); err != nil {
		return err
	}

	if _, err = h.gateway.RequestPayout(ctx, command.Amount()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
