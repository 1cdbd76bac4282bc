package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand requests courier assignment for a ready order.
//
// Without a courier the dispatch engine scores all assignable couriers
// within the dispatch radius. With a courier the command is a manual
// administrative assignment: scoring is bypassed but availability and the
// one-delivery-per-order invariant still hold.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a command to dispatch an order through
// the scoring engine.
func NewDispatchOrderCommand(orderID kernel.UUID) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

// NewDispatchOrderToCourierCommand creates a manual assignment command
// for a specific courier.
func NewDispatchOrderToCourierCommand(orderID, courierID kernel.UUID) (DispatchOrderCommand, error) {
	cmd, err := NewDispatchOrderCommand(orderID)
	if err != nil {
		return DispatchOrderCommand{}, err
	}

	if err := courierID.Validate(); err != nil {
		return DispatchOrderCommand{}, err
	}
	cmd.courierID = &courierID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the manually chosen courier, or nil for engine
// selection.
func (c DispatchOrderCommand) CourierID() *kernel.UUID {
	if c.courierID == nil {
		return nil
	}
	id := *c.courierID
	return &id
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
