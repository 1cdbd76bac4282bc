package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkArrivedCommandIsNotConstructed = errors.New(
	"MarkArrivedCommand must be created via NewMarkArrivedCommand constructor",
)

// MarkArrivedCommand records the courier reaching the customer's door.
// Arrival opens the waiting window that the waiting-fee policy and the
// timeout sweep operate on.
type MarkArrivedCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkArrivedCommand creates a command for the arrival event.
func NewMarkArrivedCommand(deliveryID, courierID kernel.UUID) (MarkArrivedCommand, error) {
	cmd := MarkArrivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(deliveryID.Validate(), courierID.Validate()); err != nil {
		return MarkArrivedCommand{}, err
	}
	cmd.deliveryID = deliveryID
	cmd.courierID = courierID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}

// DeliveryID returns the delivery that arrived.
func (c MarkArrivedCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CourierID returns the arriving courier.
func (c MarkArrivedCommand) CourierID() kernel.UUID { return c.courierID }
