package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCancelDeliveryCommandIsNotConstructed = errors.New(
		"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
	)
	ErrCancellationReasonIsRequired = errors.New("cancellation reason is required")
)

// CancelDeliveryCommand calls a delivery off. Built either for the
// assigned courier or for an administrator.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	reason     string
	actor      delivery.Actor

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a cancellation command on behalf of
// the assigned courier.
func NewCancelDeliveryCommand(deliveryID, courierID kernel.UUID, reason string) (CancelDeliveryCommand, error) {
	actor, err := delivery.CourierActor(courierID)
	if err != nil {
		return CancelDeliveryCommand{}, err
	}
	return newCancelDeliveryCommand(deliveryID, actor, reason)
}

// NewAdminCancelDeliveryCommand creates a cancellation command on behalf
// of an administrator.
func NewAdminCancelDeliveryCommand(deliveryID kernel.UUID, reason string) (CancelDeliveryCommand, error) {
	return newCancelDeliveryCommand(deliveryID, delivery.AdminActor(), reason)
}

func newCancelDeliveryCommand(deliveryID kernel.UUID, actor delivery.Actor, reason string) (CancelDeliveryCommand, error) {
	cmd := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return CancelDeliveryCommand{}, err
	}
	if reason == "" {
		return CancelDeliveryCommand{}, ErrCancellationReasonIsRequired
	}
	cmd.deliveryID = deliveryID
	cmd.actor = actor
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to cancel.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// Reason returns the cancellation reason.
func (c CancelDeliveryCommand) Reason() string { return c.reason }

// Actor returns the cancelling party.
func (c CancelDeliveryCommand) Actor() delivery.Actor { return c.actor }
