package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/account"
	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand rates the customer or restaurant of a completed
// order.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	source  account.RatingSource
	score   int
	comment string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to submit a rating.
func NewSubmitRatingCommand(
	orderID kernel.UUID,
	source account.RatingSource,
	score int,
	comment string,
) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSource(source),
		cmd.setScore(score),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// OrderID returns the rated order.
func (c SubmitRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Source returns who is being rated.
func (c SubmitRatingCommand) Source() account.RatingSource {
	return c.source
}

// Score returns the 1-5 score.
func (c SubmitRatingCommand) Score() int {
	return c.score
}

// Comment returns the optional comment.
func (c SubmitRatingCommand) Comment() string {
	return c.comment
}

func (c *SubmitRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitRatingCommand) setSource(source account.RatingSource) error {
	if err := source.Validate(); err != nil {
		return err
	}

	c.source = source
	return nil
}

func (c *SubmitRatingCommand) setScore(score int) error {
	if score < 1 || score > 5 {
		return errs.NewValueIsOutOfRangeError("score", score, 1, 5)
	}

	c.score = score
	return nil
}
