package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrReassignDeliveryCommandIsNotConstructed = errors.New(
	"ReassignDeliveryCommand must be created via NewReassignDeliveryCommand constructor",
)

// ReassignDeliveryCommand swaps the courier on a delivery the assigned
// courier never accepted. Only legal while the delivery is pending.
type ReassignDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReassignDeliveryCommand creates a command to reassign a delivery.
func NewReassignDeliveryCommand(deliveryID kernel.UUID) (ReassignDeliveryCommand, error) {
	cmd := ReassignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return ReassignDeliveryCommand{}, err
	}
	cmd.deliveryID = deliveryID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrReassignDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to reassign.
func (c ReassignDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
