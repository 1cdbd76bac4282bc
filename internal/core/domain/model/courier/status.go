package courier

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the availability state of a courier.
//
// State transitions:
//
//	PendingApproval ──> Available <──> Busy
//	                      │  ▲
//	                      ▼  │
//	                    Offline
//	(Suspended reachable from any state, admin only)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPendingApproval is the initial status of a registered courier
	// awaiting back-office approval.
	StatusPendingApproval

	// StatusAvailable means the courier is online and can receive
	// assignments.
	StatusAvailable

	// StatusBusy means the courier is carrying an active delivery.
	StatusBusy

	// StatusOffline means the courier has gone off shift.
	StatusOffline

	// StatusSuspended means the courier was blocked by an administrator.
	StatusSuspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:         "unknown",
		StatusPendingApproval: "pending_approval",
		StatusAvailable:       "available",
		StatusBusy:            "busy",
		StatusOffline:         "offline",
		StatusSuspended:       "suspended",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPendingApproval: "pending_approval",
		StatusAvailable:       "available",
		StatusBusy:            "busy",
		StatusOffline:         "offline",
		StatusSuspended:       "suspended",
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
