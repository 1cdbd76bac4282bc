package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrPickUpDeliveryCommandIsNotConstructed = errors.New(
	"PickUpDeliveryCommand must be created via NewPickUpDeliveryCommand constructor",
)

// PickUpDeliveryCommand records the courier collecting the order at the
// pharmacy.
type PickUpDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpDeliveryCommand creates a command for the pharmacy pickup.
func NewPickUpDeliveryCommand(deliveryID, courierID kernel.UUID) (PickUpDeliveryCommand, error) {
	cmd := PickUpDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(deliveryID.Validate(), courierID.Validate()); err != nil {
		return PickUpDeliveryCommand{}, err
	}
	cmd.deliveryID = deliveryID
	cmd.courierID = courierID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPickUpDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being picked up.
func (c PickUpDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CourierID returns the collecting courier.
func (c PickUpDeliveryCommand) CourierID() kernel.UUID { return c.courierID }
