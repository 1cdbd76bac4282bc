package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrSweepWaitingTimeoutsCommandIsNotConstructed = errors.New(
	"SweepWaitingTimeoutsCommand must be created via NewSweepWaitingTimeoutsCommand constructor",
)

// SweepWaitingTimeoutsCommand auto-cancels every delivery whose waiting
// window exceeded the configured timeout. Issued periodically by the job
// scheduler.
type SweepWaitingTimeoutsCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewSweepWaitingTimeoutsCommand creates a sweep command.
func NewSweepWaitingTimeoutsCommand() SweepWaitingTimeoutsCommand {
	return SweepWaitingTimeoutsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SweepWaitingTimeoutsCommand) Validate() error {
	return c.guard.Validate(ErrSweepWaitingTimeoutsCommandIsNotConstructed)
}
