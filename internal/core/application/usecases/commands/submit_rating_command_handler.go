package commands

import (
	"context"
	"errors"
	"time"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/ports"
	"riderhub/internal/pkg/errs"
)

// ErrOrderAlreadyRated is returned when a rating of the same source has
// already been submitted for the order.
var ErrOrderAlreadyRated = errors.New("order has already been rated")

// SubmitRatingCommandHandler stores a rating and submits it to the
// backend before committing. One rating per order and source.
type SubmitRatingCommandHandler struct {
	uowFactory AccountUoWFactory
	gateway    ports.BackendGateway
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(
	uowFactory AccountUoWFactory,
	gateway ports.BackendGateway,
) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the submit rating command.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, command SubmitRatingCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	rating, err := account.NewRating(
		kernel.NewUUID(),
		command.OrderID(),
		command.Source(),
		command.Score(),
		command.Comment(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	_, err = accountRepo.GetRatingForOrder(ctx, command.OrderID(), command.Source())
	if err == nil {
		return ErrOrderAlreadyRated
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = accountRepo.AddRating(ctx, rating); err != nil {
		return err
	}

	if err = h.gateway.SubmitRating(ctx, rating); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
