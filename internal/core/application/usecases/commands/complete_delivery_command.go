package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand hands the order over to the customer. The
// courier presents the code the customer received at order creation.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID
	code       string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(deliveryID, courierID kernel.UUID, code string) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deliveryID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	if err := courierID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	if code == "" {
		return CompleteDeliveryCommand{}, ErrConfirmationCodeIsRequired
	}
	cmd.deliveryID = deliveryID
	cmd.courierID = courierID
	cmd.code = code

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being completed.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CourierID returns the courier handing the order over.
func (c CompleteDeliveryCommand) CourierID() kernel.UUID { return c.courierID }

// Code returns the confirmation code presented by the courier.
func (c CompleteDeliveryCommand) Code() string { return c.code }
