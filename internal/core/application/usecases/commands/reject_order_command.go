package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/pkg/guard"
	"riderhub/internal/pkg/validate"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents the partner turning down an assigned order.
// Rejection is terminal for the order on this device; a reason is always
// required.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject the given order.
func NewRejectOrderCommand(orderID kernel.UUID, reason string) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns why the partner rejected the order.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if err := validate.Required("reason", reason); err != nil {
		return err
	}

	c.reason = reason
	return nil
}
