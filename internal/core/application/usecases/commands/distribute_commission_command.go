package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDistributeCommissionCommandIsNotConstructed = errors.New(
	"DistributeCommissionCommand must be created via NewDistributeCommissionCommand constructor",
)

// DistributeCommissionCommand settles an order total into the participant
// wallets. Normally issued internally on hand-over; exposed for manual
// settlement of orders delivered outside the courier flow.
type DistributeCommissionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDistributeCommissionCommand creates a command to distribute an
// order's commission.
func NewDistributeCommissionCommand(orderID kernel.UUID) (DistributeCommissionCommand, error) {
	cmd := DistributeCommissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return DistributeCommissionCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DistributeCommissionCommand) Validate() error {
	return c.guard.Validate(ErrDistributeCommissionCommandIsNotConstructed)
}

// OrderID returns the order to settle.
func (c DistributeCommissionCommand) OrderID() kernel.UUID { return c.orderID }
