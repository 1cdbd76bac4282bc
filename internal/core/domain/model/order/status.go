package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order, independent of the
// delivery lifecycle. It implements a state machine with defined transitions.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Paid ──> Ready ──> Delivered
//	    │           │           │        │
//	    └───────────┴───────────┴────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal. Reaching Ready is the dispatch
// trigger.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly placed order.
	Pending

	// Confirmed means the pharmacy has accepted the order.
	Confirmed

	// Paid means payment was confirmed by the payment gateway boundary.
	Paid

	// Ready means the order is packed and awaiting courier dispatch.
	Ready

	// Delivered means the courier completed the delivery. Terminal.
	Delivered

	// Cancelled means the order was withdrawn before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Paid:      "paid",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Paid:      "paid",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
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
	return s == Delivered || s == Cancelled
}

// Confirm transitions Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, transitionError(s, Confirmed)
	}
	return Confirmed, nil
}

// Pay transitions Confirmed -> Paid.
func (s Status) Pay() (Status, error) {
	if s != Confirmed {
		return 0, transitionError(s, Paid)
	}
	return Paid, nil
}

// MarkReady transitions Paid -> Ready. Ready orders are picked up by the
// dispatch engine.
func (s Status) MarkReady() (Status, error) {
	if s != Paid {
		return 0, transitionError(s, Ready)
	}
	return Ready, nil
}

// Deliver transitions Ready -> Delivered. Called from the terminal delivery
// transition.
func (s Status) Deliver() (Status, error) {
	if s != Ready {
		return 0, transitionError(s, Delivered)
	}
	return Delivered, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, transitionError(s, Cancelled)
	}
	return Cancelled, nil
}

func transitionError(from, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("cannot transition order from %s to %s", from, to))
}
