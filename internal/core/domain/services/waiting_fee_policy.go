package services

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/govalues/decimal"
)

// WaitingFeePolicy holds the tunables of the waiting window a courier
// opens on arrival at the customer's door. All three values come from
// configuration per operation; the policy itself is a pure calculator.
//
// The first FreeMinutes of waiting are free. Every further whole minute
// accrues FeePerMinute. Once TimeoutMinutes elapse the delivery is
// eligible for auto-cancellation by the timeout sweep.
type WaitingFeePolicy struct {
	timeoutMinutes int
	freeMinutes    int
	feePerMinute   kernel.Money
}

// NewWaitingFeePolicy validates and builds a policy.
func NewWaitingFeePolicy(timeoutMinutes, freeMinutes int, feePerMinute kernel.Money) (WaitingFeePolicy, error) {
	if timeoutMinutes <= 0 {
		return WaitingFeePolicy{}, errs.NewValueIsOutOfRangeError(
			"timeoutMinutes", timeoutMinutes, 1, 24*60)
	}
	if freeMinutes < 0 {
		return WaitingFeePolicy{}, errs.NewValueIsOutOfRangeError(
			"freeMinutes", freeMinutes, 0, timeoutMinutes)
	}
	if err := feePerMinute.Validate(); err != nil {
		return WaitingFeePolicy{}, err
	}
	if feePerMinute.IsNegative() {
		return WaitingFeePolicy{}, errs.NewValueIsInvalidError("feePerMinute must not be negative")
	}

	return WaitingFeePolicy{
		timeoutMinutes: timeoutMinutes,
		freeMinutes:    freeMinutes,
		feePerMinute:   feePerMinute,
	}, nil
}

// TimeoutMinutes returns the auto-cancel threshold.
func (p WaitingFeePolicy) TimeoutMinutes() int {
	return p.timeoutMinutes
}

// FreeMinutes returns the free head of the waiting window.
func (p WaitingFeePolicy) FreeMinutes() int {
	return p.freeMinutes
}

// FeePerMinute returns the per-minute fee.
func (p WaitingFeePolicy) FeePerMinute() kernel.Money {
	return p.feePerMinute
}

// CurrentFee computes the fee accrued by the delivery's waiting window.
// Elapsed time is measured against the window's end when it is closed and
// against now while it is open; only whole minutes beyond the free head
// are billed. A delivery that never waited owes nothing.
func (p WaitingFeePolicy) CurrentFee(d *delivery.Delivery, now time.Time) (kernel.Money, error) {
	zero, err := kernel.ZeroMoney(p.feePerMinute.Currency())
	if err != nil {
		return kernel.Money{}, err
	}

	started := d.WaitingStartedAt()
	if started == nil {
		return zero, nil
	}

	end := now
	if ended := d.WaitingEndedAt(); ended != nil {
		end = *ended
	}

	billable := wholeMinutes(end.Sub(*started)) - p.freeMinutes
	if billable <= 0 {
		return zero, nil
	}

	minutes, err := decimal.New(int64(billable), 0)
	if err != nil {
		return kernel.Money{}, err
	}
	return p.feePerMinute.MulRate(minutes)
}

// HasTimedOut reports whether the delivery's waiting window is still open
// and has reached the timeout threshold.
func (p WaitingFeePolicy) HasTimedOut(d *delivery.Delivery, now time.Time) bool {
	if !d.IsWaitingOpen() {
		return false
	}
	return wholeMinutes(now.Sub(*d.WaitingStartedAt())) >= p.timeoutMinutes
}

func wholeMinutes(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}
