package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through a constructor.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery constructor")
	// ErrActorNotAllowed is returned when the caller is neither the
	// assigned courier nor an administrator.
	ErrActorNotAllowed = errors.New("actor is not allowed to act on this delivery")
	// ErrConfirmationCodeMismatch is returned when the hand-over code does
	// not match the order's confirmation code.
	ErrConfirmationCodeMismatch = errors.New("confirmation code does not match")
	// ErrReasonIsRequired is returned when failing or cancelling without a
	// reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
	// ErrReassignRequiresPending is returned when swapping couriers on a
	// delivery that already left the pending state.
	ErrReassignRequiresPending = errors.New("only a pending delivery can be reassigned")
)

// Delivery is the aggregate root tracking the physical movement of one
// order from the pharmacy to the customer. Exactly one Delivery exists per
// order; the dispatch use case enforces that with a unique order
// constraint.
//
// Invariants:
//   - Status transitions follow the state machine in status.go
//   - Transitions are authorized against the acting party and mutate
//     nothing on failure
//   - The waiting window opens at most once and closes at most once
//   - Terminal deliveries are immutable
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// orderID identifies the delivered order, unique across deliveries
	orderID kernel.UUID

	// courierID is the assigned courier, nil for a restored legacy row
	courierID *kernel.UUID

	// status is the current lifecycle state
	status Status

	// pickup is the pharmacy coordinate pair, copied at creation
	pickup kernel.GeoPoint

	// dropoff is the customer coordinate pair, copied at creation
	dropoff kernel.GeoPoint

	// distanceKm is the estimated pickup-to-dropoff distance
	distanceKm float64

	// estimatedMinutes is the estimated travel plus preparation time
	estimatedMinutes int

	// fee is the delivery fee charged for the trip
	fee kernel.Money

	// createdAt is the dispatch timestamp
	createdAt time.Time

	// assignedAt is set when the courier accepts
	assignedAt *time.Time

	// pickedUpAt is set when the courier collects the order
	pickedUpAt *time.Time

	// deliveredAt is set on confirmed hand-over
	deliveredAt *time.Time

	// waitingStartedAt opens the waiting window on arrival
	waitingStartedAt *time.Time

	// waitingEndedAt closes the waiting window
	waitingEndedAt *time.Time

	// waitingFee is the accrued waiting fee, persisted when the window closes
	waitingFee *kernel.Money

	// autoCancelledAt is set only by the timeout sweep
	autoCancelledAt *time.Time

	// cancellationReason records why the delivery was cancelled
	cancellationReason string

	// failureReason records why the delivery failed
	failureReason string

	// guard ensures the delivery was created via a constructor
	guard guard.ConstructorGuard
}

// NewDelivery creates a pending Delivery for an order with a selected
// courier and precomputed route figures.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID kernel.UUID,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	distanceKm float64,
	estimatedMinutes int,
	fee kernel.Money,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:    StatusPending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setCourierID(courierID),
		d.setRoute(pickup, dropoff, distanceKm, estimatedMinutes),
		d.setFee(fee),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	distanceKm float64,
	estimatedMinutes int,
	fee kernel.Money,
	createdAt time.Time,
	assignedAt, pickedUpAt, deliveredAt *time.Time,
	waitingStartedAt, waitingEndedAt *time.Time,
	waitingFee *kernel.Money,
	autoCancelledAt *time.Time,
	cancellationReason, failureReason string,
) (*Delivery, error) {
	d := &Delivery{
		createdAt:          createdAt,
		assignedAt:         copyTime(assignedAt),
		pickedUpAt:         copyTime(pickedUpAt),
		deliveredAt:        copyTime(deliveredAt),
		waitingStartedAt:   copyTime(waitingStartedAt),
		waitingEndedAt:     copyTime(waitingEndedAt),
		autoCancelledAt:    copyTime(autoCancelledAt),
		cancellationReason: cancellationReason,
		failureReason:      failureReason,
		guard:              guard.NewConstructorGuard(),
	}

	join := []error{
		d.setID(id),
		d.setOrderID(orderID),
		d.setRoute(pickup, dropoff, distanceKm, estimatedMinutes),
		d.setFee(fee),
		d.setStatus(status),
	}
	if courierID != nil {
		join = append(join, d.setCourierID(*courierID))
	}
	if waitingFee != nil {
		join = append(join, d.RecordWaitingFee(*waitingFee))
	}

	if err := errors.Join(join...); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the delivered order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// CourierID returns a copy of the assigned courier's identifier, or nil.
func (d *Delivery) CourierID() *kernel.UUID {
	if d.courierID == nil {
		return nil
	}
	id := *d.courierID
	return &id
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// Pickup returns the pharmacy coordinates.
func (d *Delivery) Pickup() kernel.GeoPoint {
	return d.pickup
}

// Dropoff returns the customer coordinates.
func (d *Delivery) Dropoff() kernel.GeoPoint {
	return d.dropoff
}

// DistanceKm returns the estimated trip distance.
func (d *Delivery) DistanceKm() float64 {
	return d.distanceKm
}

// EstimatedMinutes returns the estimated trip duration.
func (d *Delivery) EstimatedMinutes() int {
	return d.estimatedMinutes
}

// Fee returns the delivery fee.
func (d *Delivery) Fee() kernel.Money {
	return d.fee
}

// CreatedAt returns the dispatch timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// AssignedAt returns the acceptance timestamp, or nil.
func (d *Delivery) AssignedAt() *time.Time {
	return copyTime(d.assignedAt)
}

// PickedUpAt returns the collection timestamp, or nil.
func (d *Delivery) PickedUpAt() *time.Time {
	return copyTime(d.pickedUpAt)
}

// DeliveredAt returns the hand-over timestamp, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return copyTime(d.deliveredAt)
}

// WaitingStartedAt returns when the waiting window opened, or nil.
func (d *Delivery) WaitingStartedAt() *time.Time {
	return copyTime(d.waitingStartedAt)
}

// WaitingEndedAt returns when the waiting window closed, or nil.
func (d *Delivery) WaitingEndedAt() *time.Time {
	return copyTime(d.waitingEndedAt)
}

// WaitingFee returns a copy of the persisted waiting fee, or nil.
func (d *Delivery) WaitingFee() *kernel.Money {
	if d.waitingFee == nil {
		return nil
	}
	fee := *d.waitingFee
	return &fee
}

// AutoCancelledAt returns the timeout-sweep cancellation timestamp, or nil.
func (d *Delivery) AutoCancelledAt() *time.Time {
	return copyTime(d.autoCancelledAt)
}

// CancellationReason returns why the delivery was cancelled.
func (d *Delivery) CancellationReason() string {
	return d.cancellationReason
}

// FailureReason returns why the delivery failed.
func (d *Delivery) FailureReason() string {
	return d.failureReason
}

// IsWaitingOpen reports whether the waiting window is open.
func (d *Delivery) IsWaitingOpen() bool {
	return d.waitingStartedAt != nil && d.waitingEndedAt == nil
}

// Accept records the assigned courier taking the delivery.
func (d *Delivery) Accept(actor Actor, now time.Time) error {
	if err := d.authorize(actor); err != nil {
		return err
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.assignedAt = &now
	return nil
}

// Reassign swaps the courier on a still-pending delivery. The status is
// left untouched.
func (d *Delivery) Reassign(courierID kernel.UUID) error {
	if d.status != StatusPending {
		return ErrReassignRequiresPending
	}
	return d.setCourierID(courierID)
}

// PickUp records the courier collecting the order at the pharmacy.
func (d *Delivery) PickUp(actor Actor, now time.Time) error {
	if err := d.authorize(actor); err != nil {
		return err
	}

	newStatus, err := d.status.PickUp()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.pickedUpAt = &now
	return nil
}

// StartTransit records the courier leaving for the customer.
func (d *Delivery) StartTransit(actor Actor) error {
	if err := d.authorize(actor); err != nil {
		return err
	}

	newStatus, err := d.status.StartTransit()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkArrived records the courier reaching the drop-off point and opens
// the waiting window.
func (d *Delivery) MarkArrived(actor Actor, now time.Time) error {
	if err := d.authorize(actor); err != nil {
		return err
	}

	newStatus, err := d.status.Arrive()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.StartWaiting(now)
	return nil
}

// ConfirmDelivered closes the delivery on a matching confirmation code.
// The waiting window is closed as part of the same call; nothing is
// mutated when the state, actor, or code check fails.
func (d *Delivery) ConfirmDelivered(actor Actor, code, confirmationCode string, now time.Time) error {
	if err := d.authorize(actor); err != nil {
		return err
	}

	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}
	if code != confirmationCode {
		return ErrConfirmationCodeMismatch
	}

	d.status = newStatus
	d.deliveredAt = &now
	d.StopWaiting(now)
	return nil
}

// Fail aborts the delivery with a reason from any non-terminal state.
func (d *Delivery) Fail(actor Actor, reason string, now time.Time) error {
	if err := d.authorize(actor); err != nil {
		return err
	}
	if reason == "" {
		return ErrReasonIsRequired
	}

	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.failureReason = reason
	d.StopWaiting(now)
	return nil
}

// Cancel calls the delivery off with a reason from any non-terminal state.
func (d *Delivery) Cancel(actor Actor, reason string, now time.Time) error {
	if err := d.authorize(actor); err != nil {
		return err
	}
	if reason == "" {
		return ErrReasonIsRequired
	}

	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.cancellationReason = reason
	d.StopWaiting(now)
	return nil
}

// AutoCancel is the timeout-sweep cancellation path. It records the sweep
// timestamp in addition to the regular cancellation bookkeeping.
func (d *Delivery) AutoCancel(reason string, now time.Time) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.cancellationReason = reason
	d.autoCancelledAt = &now
	d.StopWaiting(now)
	return nil
}

// StartWaiting opens the waiting window. Calling it again while the window
// is open is a no-op.
func (d *Delivery) StartWaiting(now time.Time) {
	if d.waitingStartedAt != nil {
		return
	}
	d.waitingStartedAt = &now
}

// StopWaiting closes the waiting window. Calling it before the window
// opened, or after it closed, is a no-op.
func (d *Delivery) StopWaiting(now time.Time) {
	if !d.IsWaitingOpen() {
		return
	}
	d.waitingEndedAt = &now
}

// RecordWaitingFee persists the accrued waiting fee computed by the
// waiting-fee policy.
func (d *Delivery) RecordWaitingFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	if fee.IsNegative() {
		return errs.NewValueIsInvalidError("waiting fee must not be negative")
	}

	d.waitingFee = &fee
	return nil
}

// authorize checks the acting party. Administrators may always act; a
// courier only on a delivery assigned to them; customers never.
func (d *Delivery) authorize(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	switch actor.Kind() {
	case ActorKindAdmin:
		return nil
	case ActorKindCourier:
		if d.courierID != nil && d.courierID.IsEqual(actor.CourierID()) {
			return nil
		}
		return ErrActorNotAllowed
	default:
		return ErrActorNotAllowed
	}
}

// setID validates and sets the delivery's unique identifier.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setOrderID validates and sets the order identifier.
func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.orderID = id
	return nil
}

// setCourierID validates and sets the assigned courier.
func (d *Delivery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.courierID = &id
	return nil
}

// setRoute validates and sets the coordinates and route estimates.
func (d *Delivery) setRoute(pickup, dropoff kernel.GeoPoint, distanceKm float64, estimatedMinutes int) error {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return err
	}
	if distanceKm < 0 {
		return errs.NewValueIsInvalidError("distance must not be negative")
	}
	if estimatedMinutes < 0 {
		return errs.NewValueIsInvalidError("estimated minutes must not be negative")
	}

	d.pickup = pickup
	d.dropoff = dropoff
	d.distanceKm = distanceKm
	d.estimatedMinutes = estimatedMinutes
	return nil
}

// setFee validates and sets the delivery fee.
func (d *Delivery) setFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	if fee.IsNegative() {
		return errs.NewValueIsInvalidError("fee must not be negative")
	}
	d.fee = fee
	return nil
}

// setStatus validates and sets the status. Used during restoration.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
