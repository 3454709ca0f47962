package ticket

import (
	"fmt"

	"riderhub/internal/pkg/errs"
)

// Status represents the workflow state of a support ticket.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOpen is the initial state of a newly created ticket.
	StatusOpen

	// StatusInProgress means support has started working the ticket.
	StatusInProgress

	// StatusResolved means support considers the issue handled.
	StatusResolved

	// StatusClosed is the terminal state; no further responses are accepted.
	StatusClosed
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOpen:       "open",
		StatusInProgress: "in_progress",
		StatusResolved:   "resolved",
		StatusClosed:     "closed",
	}
}

// StatusFromString parses the wire representation of a ticket status.
func StatusFromString(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("ticket status is invalid",
		fmt.Errorf("%q is not a valid ticket status", s))
}

// Validate checks the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("ticket status is invalid",
			fmt.Errorf("%d is not a valid ticket status", s))
	}
	return nil
}

// IsTerminal reports whether the ticket can still change.
func (s Status) IsTerminal() bool {
	return s == StatusClosed
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Category classifies what a support ticket is about.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryOrderIssue covers problems with a specific order.
	CategoryOrderIssue

	// CategoryPayment covers earnings, payouts and settlement problems.
	CategoryPayment

	// CategoryAccount covers profile, document and login problems.
	CategoryAccount

	// CategoryTechnical covers app and device problems.
	CategoryTechnical

	// CategoryOther is the catch-all category.
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryOrderIssue: "order_issue",
		CategoryPayment:    "payment",
		CategoryAccount:    "account",
		CategoryTechnical:  "technical",
		CategoryOther:      "other",
	}
}

// CategoryFromString parses the wire representation of a ticket category.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getCategoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("ticket category is invalid",
		fmt.Errorf("%q is not a valid ticket category", s))
}

// Validate checks the category is one of the defined values.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("ticket category is invalid",
			fmt.Errorf("%d is not a valid ticket category", c))
	}
	return nil
}

// String returns the wire name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Priority orders tickets for support triage.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow is for non-blocking questions.
	PriorityLow

	// PriorityMedium is the default priority.
	PriorityMedium

	// PriorityHigh is for problems blocking active deliveries.
	PriorityHigh

	// PriorityUrgent is for safety and payment-loss incidents.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityLow:    "low",
		PriorityMedium: "medium",
		PriorityHigh:   "high",
		PriorityUrgent: "urgent",
	}
}

// PriorityFromString parses the wire representation of a ticket priority.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range getPriorityStrings() {
		if str == s {
			return p, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("ticket priority is invalid",
		fmt.Errorf("%q is not a valid ticket priority", s))
}

// Validate checks the priority is one of the defined values.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("ticket priority is invalid",
			fmt.Errorf("%d is not a valid ticket priority", p))
	}
	return nil
}

// String returns the wire name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
