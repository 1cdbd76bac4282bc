package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand records the assigned courier taking a pending
// delivery.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a courier accepting a
// delivery.
func NewAcceptDeliveryCommand(deliveryID, courierID kernel.UUID) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(deliveryID.Validate(), courierID.Validate()); err != nil {
		return AcceptDeliveryCommand{}, err
	}
	cmd.deliveryID = deliveryID
	cmd.courierID = courierID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to accept.
func (c AcceptDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CourierID returns the accepting courier.
func (c AcceptDeliveryCommand) CourierID() kernel.UUID { return c.courierID }
