package order

import (
	"errors"
	"fmt"

	"riderhub/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for illegal order status changes.
// Use errors.Is against this to classify transition failures.
var ErrInvalidTransition = errors.New("invalid order status transition")

// InvalidTransitionError reports an attempted status change that the order
// lifecycle does not permit. The order is left unchanged whenever this error
// is returned.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected edge from -> to.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a delivery order.
// It implements a strictly linear state machine: an order only ever advances
// forward through the fixed sequence, with cancellation as the sole exit.
//
// State transitions:
//
//	Assigned ──> Accepted ──> Picked ──> EnRoute ──> Delivered
//	    │            │
//	    └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. No transition may skip a step or
// move backwards.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status: the platform offered the order to the
	// partner, who has not yet responded.
	Assigned

	// Accepted indicates the partner took the order and is heading to the
	// restaurant.
	Accepted

	// Picked indicates the partner collected the order at the restaurant.
	Picked

	// EnRoute indicates the partner is driving to the delivery address.
	EnRoute

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal failure state, reached by partner rejection
	// from Assigned or cancellation from Accepted.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Assigned:  "assigned",
		Accepted:  "accepted",
		Picked:    "picked",
		EnRoute:   "en_route",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "assigned",
		Accepted:  "accepted",
		Picked:    "picked",
		EnRoute:   "en_route",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// successors holds the unique forward edge for every non-terminal status.
func successors() map[Status]Status {
	//nolint:exhaustive // terminal statuses have no successor
	return map[Status]Status{
		Assigned: Accepted,
		Accepted: Picked,
		Picked:   EnRoute,
		EnRoute:  Delivered,
	}
}

// StatusFromString parses the wire representation ("assigned", "en_route", ...)
// used by the backend contract and the database. Returns a validation error
// for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("assigned", "picked", ...).
// Invalid values render as "unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the order lifecycle.
// Terminal orders belong to the history list and may no longer change.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the unique successor in the fixed sequence.
// Returns an InvalidTransitionError for terminal or invalid statuses.
func (s Status) Next() (Status, error) {
	next, ok := successors()[s]
	if !ok {
		return Unknown, NewInvalidTransitionError(s, Unknown)
	}
	return next, nil
}

// AdvanceTo validates that next is the immediate successor of the current
// status and returns it. Any other target fails with InvalidTransitionError,
// leaving the caller's state untouched.
func (s Status) AdvanceTo(next Status) (Status, error) {
	successor, ok := successors()[s]
	if !ok || successor != next {
		return Unknown, NewInvalidTransitionError(s, next)
	}
	return next, nil
}

// Accept transitions the status to Accepted.
// The only legal source is Assigned.
func (s Status) Accept() (Status, error) {
	if s != Assigned {
		return Unknown, NewInvalidTransitionError(s, Accepted)
	}
	return Accepted, nil
}

// Cancel transitions the status to Cancelled.
// Legal only from Assigned (rejection) or Accepted (cancellation); orders
// that reached Picked are committed and can no longer be abandoned.
func (s Status) Cancel() (Status, error) {
	if s != Assigned && s != Accepted {
		return Unknown, NewInvalidTransitionError(s, Cancelled)
	}
	return Cancelled, nil
}
