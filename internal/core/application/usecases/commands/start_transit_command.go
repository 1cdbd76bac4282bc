package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand records the courier leaving the pharmacy for the
// customer.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command for the transit start.
func NewStartTransitCommand(deliveryID, courierID kernel.UUID) (StartTransitCommand, error) {
	cmd := StartTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(deliveryID.Validate(), courierID.Validate()); err != nil {
		return StartTransitCommand{}, err
	}
	cmd.deliveryID = deliveryID
	cmd.courierID = courierID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// DeliveryID returns the delivery in transit.
func (c StartTransitCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CourierID returns the courier en route.
func (c StartTransitCommand) CourierID() kernel.UUID { return c.courierID }
