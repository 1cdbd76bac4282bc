package courier

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// RatingMin is the lowest possible courier rating.
	RatingMin = 0.0
	// RatingMax is the highest possible courier rating. New couriers start
	// here so a lack of history does not penalize them twice.
	RatingMax = 5.0
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleIsRequired is returned when attempting to create a courier without a vehicle type.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle type")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierNotApprovable is returned when approving a courier that is not pending approval.
	ErrCourierNotApprovable = errors.New("courier is not pending approval")
	// ErrCourierSuspended is returned when a suspended courier attempts a status change.
	ErrCourierSuspended = errors.New("courier is suspended")
)

// Courier is the aggregate root for a delivery courier. It manages the
// courier's identity, availability status, last reported position, and
// reliability statistics (rating and completed-delivery count) that feed the
// dispatch scoring.
//
// Business rules:
//   - A courier must have a valid UUID, a non-empty name, and a vehicle type
//   - Only available couriers with a reported position are assignment candidates
//   - A courier carries at most one active delivery (Busy while assigned)
//   - Suspension blocks every availability change until lifted by an admin
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// vehicle determines the courier's travel speed for ETA estimates
	vehicle kernel.VehicleType
	// status is the availability state
	status Status
	// location is the last reported position; nil until the first update
	location *kernel.GeoPoint
	// rating is the cumulative rating, 0 to 5
	rating float64
	// completedDeliveries counts successfully delivered orders
	completedDeliveries int
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a freshly registered Courier in pending-approval status
// with no reported position, the maximum starting rating, and zero completed
// deliveries.
func NewCourier(id kernel.UUID, name string, vehicle kernel.VehicleType) (*Courier, error) {
	c := &Courier{
		status: StatusPendingApproval,
		rating: RatingMax,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// preserving its status, position, and statistics.
func RestoreCourier(
	id kernel.UUID,
	name string,
	vehicle kernel.VehicleType,
	status Status,
	location *kernel.GeoPoint,
	rating float64,
	completedDeliveries int,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setVehicle(vehicle),
		c.setStatus(status),
		c.setLocation(location),
		c.setRating(rating),
		c.setCompletedDeliveries(completedDeliveries),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks that the Courier was created via NewCourier or
// RestoreCourier. The zero value is invalid.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Vehicle returns the courier's vehicle type.
func (c *Courier) Vehicle() kernel.VehicleType {
	return c.vehicle
}

// Status returns the current availability status.
func (c *Courier) Status() Status {
	return c.status
}

// Location returns the last reported position, or nil when the courier has
// never reported one. The returned value is a copy.
func (c *Courier) Location() *kernel.GeoPoint {
	if c.location == nil {
		return nil
	}
	loc := *c.location
	return &loc
}

// Rating returns the cumulative rating (0-5).
func (c *Courier) Rating() float64 {
	return c.rating
}

// CompletedDeliveries returns the number of successfully delivered orders.
func (c *Courier) CompletedDeliveries() int {
	return c.completedDeliveries
}

// IsAssignable reports whether the courier is a dispatch candidate: it must
// be available and have a reported position.
func (c *Courier) IsAssignable() bool {
	return c.status == StatusAvailable && c.location != nil
}

// UpdateLocation records a new point-in-time position report.
func (c *Courier) UpdateLocation(p kernel.GeoPoint) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.location = &p
	return nil
}

// Approve moves a pending-approval courier to offline, ready to go on
// shift. Only legal from pending-approval.
func (c *Courier) Approve() error {
	if c.status != StatusPendingApproval {
		return ErrCourierNotApprovable
	}

	c.status = StatusOffline
	return nil
}

// MarkAvailable puts the courier on shift. Suspended and unapproved couriers
// cannot become available.
func (c *Courier) MarkAvailable() error {
	switch c.status {
	case StatusSuspended:
		return ErrCourierSuspended
	case StatusPendingApproval:
		return ErrCourierNotApprovable
	default:
		c.status = StatusAvailable
		return nil
	}
}

// MarkBusy marks the courier as carrying an active delivery. Dispatch calls
// this in the same transaction that creates the delivery.
func (c *Courier) MarkBusy() error {
	if c.status != StatusAvailable {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("courier is %s, not available", c.status))
	}

	c.status = StatusBusy
	return nil
}

// MarkOffline takes the courier off shift. Suspended couriers stay
// suspended.
func (c *Courier) MarkOffline() error {
	if c.status == StatusSuspended {
		return ErrCourierSuspended
	}

	c.status = StatusOffline
	return nil
}

// Suspend blocks the courier from receiving work. Admin-only operation at
// the application layer.
func (c *Courier) Suspend() {
	c.status = StatusSuspended
}

// Release returns a busy courier to the available pool, typically after its
// active delivery reaches a terminal state.
func (c *Courier) Release() {
	if c.status == StatusBusy {
		c.status = StatusAvailable
	}
}

// RecordCompletedDelivery increments the completed-delivery counter that
// feeds the dispatch experience bonus.
func (c *Courier) RecordCompletedDelivery() {
	c.completedDeliveries++
}

// Rate folds a new delivery rating into the cumulative average.
func (c *Courier) Rate(score float64) error {
	if score < RatingMin || score > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", score, RatingMin, RatingMax)
	}

	n := float64(c.completedDeliveries)
	if n == 0 {
		c.rating = score
		return nil
	}

	c.rating = (c.rating*n + score) / (n + 1)
	return nil
}

// setID sets the courier's unique identifier with validation.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the courier's name with validation.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setVehicle sets the courier's vehicle type with validation.
func (c *Courier) setVehicle(vehicle kernel.VehicleType) error {
	if vehicle == "" {
		return ErrVehicleIsRequired
	}

	c.vehicle = vehicle
	return nil
}

// setStatus sets the availability status. Used during restoration.
func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

// setLocation sets the position. A nil location is legal: the courier has
// never reported one.
func (c *Courier) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		c.location = nil
		return nil
	}

	if err := location.Validate(); err != nil {
		return err
	}

	loc := *location
	c.location = &loc
	return nil
}

// setRating sets the cumulative rating with range validation.
func (c *Courier) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}

	c.rating = rating
	return nil
}

// setCompletedDeliveries sets the completed-delivery counter.
func (c *Courier) setCompletedDeliveries(n int) error {
	if n < 0 {
		return errs.NewValueIsInvalidError("completed deliveries")
	}

	c.completedDeliveries = n
	return nil
}
