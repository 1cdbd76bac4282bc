// Package systemclock implements the clock port with wall-clock time.
package systemclock

import "time"

// Clock returns the current UTC time. Handlers take their single "now"
// from it at the start of an operation so every timestamp written in one
// transaction agrees.
type Clock struct{}

// NewClock creates a system clock.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current time in UTC.
func (Clock) Now() time.Time {
	return time.Now().UTC()
}
