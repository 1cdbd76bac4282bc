package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery. It implements a
// state machine with defined transitions.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──> Arrived ──> Delivered
//	    │           │            │             │            │
//	    └───────────┴────────────┴─────────────┴────────────┴──> Failed / Cancelled
//
// Delivered, Failed, and Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending means a courier was selected but has not accepted yet.
	StatusPending

	// StatusAssigned means the courier accepted the delivery.
	StatusAssigned

	// StatusPickedUp means the courier collected the order at the pharmacy.
	StatusPickedUp

	// StatusInTransit means the courier is en route to the customer.
	StatusInTransit

	// StatusArrived means the courier reached the drop-off point. The
	// waiting window is open in this state.
	StatusArrived

	// StatusDelivered means the hand-over was confirmed. Terminal.
	StatusDelivered

	// StatusFailed means the delivery could not be completed. Terminal.
	StatusFailed

	// StatusCancelled means the delivery was called off. Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusArrived:   "arrived",
		StatusDelivered: "delivered",
		StatusFailed:    "failed",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusArrived:   "arrived",
		StatusDelivered: "delivered",
		StatusFailed:    "failed",
		StatusCancelled: "cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is legal.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusCancelled
}

// Accept transitions Pending -> Assigned.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, transitionError(s, StatusAssigned)
	}
	return StatusAssigned, nil
}

// PickUp transitions Assigned -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != StatusAssigned {
		return 0, transitionError(s, StatusPickedUp)
	}
	return StatusPickedUp, nil
}

// StartTransit transitions PickedUp -> InTransit.
func (s Status) StartTransit() (Status, error) {
	if s != StatusPickedUp {
		return 0, transitionError(s, StatusInTransit)
	}
	return StatusInTransit, nil
}

// Arrive transitions InTransit -> Arrived.
func (s Status) Arrive() (Status, error) {
	if s != StatusInTransit {
		return 0, transitionError(s, StatusArrived)
	}
	return StatusArrived, nil
}

// Deliver transitions Arrived -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != StatusArrived {
		return 0, transitionError(s, StatusDelivered)
	}
	return StatusDelivered, nil
}

// Fail transitions any non-terminal status to Failed.
func (s Status) Fail() (Status, error) {
	return s.sideExit(StatusFailed)
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.sideExit(StatusCancelled)
}

func (s Status) sideExit(to Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, transitionError(s, to)
	}
	return to, nil
}

func transitionError(from, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("cannot transition delivery from %s to %s", from, to))
}
