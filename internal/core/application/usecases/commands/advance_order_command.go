package commands

import (
	"errors"

	"riderhub/internal/core/domain/model/kernel"
	"riderhub/internal/core/domain/model/order"
	"riderhub/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand moves an accepted order one step forward along the
// delivery sequence. The optional location is the partner's position at
// the moment of the transition.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	next     order.Status
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance the given order.
func NewAdvanceOrderCommand(orderID kernel.UUID, next order.Status, location *kernel.GeoPoint) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
		cmd.setLocation(location),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the requested target status.
func (c AdvanceOrderCommand) Next() order.Status {
	return c.next
}

// Location returns the partner's position, or nil when not reported.
func (c AdvanceOrderCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}

func (c *AdvanceOrderCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
