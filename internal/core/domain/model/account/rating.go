package account

import (
	"errors"
	"fmt"
	"time"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/errs"
)

// ErrRatingIsNotConstructed is returned when a Rating was not created
// through the NewRating factory.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// RatingSource identifies who the partner is rating.
type RatingSource int

const (
	// RatingSourceUnknown represents an invalid or undefined source.
	RatingSourceUnknown RatingSource = iota

	// RatingCustomer rates the customer on an order.
	RatingCustomer

	// RatingRestaurant rates the restaurant on an order.
	RatingRestaurant
)

func getRatingSourceStrings() map[RatingSource]string {
	//nolint:exhaustive // RatingSourceUnknown is intentionally excluded as it's invalid
	return map[RatingSource]string{
		RatingCustomer:   "customer",
		RatingRestaurant: "restaurant",
	}
}

// RatingSourceFromString parses the wire representation of a rating source.
func RatingSourceFromString(s string) (RatingSource, error) {
	for r, str := range getRatingSourceStrings() {
		if str == s {
			return r, nil
		}
	}
	return RatingSourceUnknown, errs.NewValueIsInvalidErrorWithCause("rating source is invalid",
		fmt.Errorf("%q is not a valid rating source", s))
}

// Validate checks the rating source is one of the defined values.
func (r RatingSource) Validate() error {
	if _, ok := getRatingSourceStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("rating source is invalid",
			fmt.Errorf("%d is not a valid rating source", r))
	}
	return nil
}

// String returns the wire name of the rating source.
func (r RatingSource) String() string {
	if str, ok := getRatingSourceStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Rating is an immutable 1-5 score the partner submits for the customer or
// the restaurant of a completed order.
type Rating struct {
	id        kernel.UUID
	orderID   kernel.UUID
	source    RatingSource
	score     int
	comment   string
	createdAt time.Time

	isConstructed bool
}

// NewRating creates a validated rating.
func NewRating(
	id kernel.UUID,
	orderID kernel.UUID,
	source RatingSource,
	score int,
	comment string,
	createdAt time.Time,
) (Rating, error) {
	r := Rating{
		comment:       comment,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setSource(source),
		r.setScore(score),
		r.setCreatedAt(createdAt),
	); err != nil {
		return Rating{}, err
	}

	return r, nil
}

// Validate ensures the Rating was created via NewRating.
func (r Rating) Validate() error {
	if !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

// ID returns the rating identifier.
func (r Rating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the rated order.
func (r Rating) OrderID() kernel.UUID {
	return r.orderID
}

// Source returns who is being rated.
func (r Rating) Source() RatingSource {
	return r.source
}

// Score returns the 1-5 score.
func (r Rating) Score() int {
	return r.score
}

// Comment returns the optional free-text comment.
func (r Rating) Comment() string {
	return r.comment
}

// CreatedAt returns when the rating was submitted.
func (r Rating) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Rating) setSource(source RatingSource) error {
	if err := source.Validate(); err != nil {
		return err
	}
	r.source = source
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < ratingMin || score > ratingMax {
		return errs.NewValueIsOutOfRangeError("score", score, ratingMin, ratingMax)
	}
	r.score = score
	return nil
}

func (r *Rating) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	r.createdAt = createdAt
	return nil
}
