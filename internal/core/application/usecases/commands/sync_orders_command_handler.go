package commands

import (
	"context"
	"errors"

	"riderhub/internal/core/ports"
	"riderhub/internal/pkg/errs"
)

// SyncOrdersCommandHandler ingests backend-assigned orders into the local
// store. Unknown orders are added; known orders are only overwritten by a
// strictly newer snapshot, so a stale or duplicated sync response never
// rolls local progress back.
type SyncOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.BackendGateway
}

// NewSyncOrdersCommandHandler creates a handler for order ingestion.
func NewSyncOrdersCommandHandler(uowFactory OrderUoWFactory, gateway ports.BackendGateway) SyncOrdersCommandHandler {
	return SyncOrdersCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the sync orders command.
func (h SyncOrdersCommandHandler) Handle(ctx context.Context, command SyncOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	incoming, err := h.gateway.FetchAssignedOrders(ctx)
	if err != nil {
		return err
	}
	if len(incoming) == 0 {
		return nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	for _, snapshot := range incoming {
		existing, getErr := ordersRepo.Get(ctx, snapshot.ID())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			if addErr := ordersRepo.Add(ctx, snapshot); addErr != nil {
				return addErr
			}
			continue
		}
		if getErr != nil {
			return getErr
		}

		if snapshot.Version() <= existing.Version() {
			continue
		}

		if updErr := ordersRepo.Update(ctx, snapshot); updErr != nil {
			return updErr
		}
	}

	return uow.Commit(ctx)
}
