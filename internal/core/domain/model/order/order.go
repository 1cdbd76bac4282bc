package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through a constructor.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrReferenceIsRequired is returned when creating an order without a reference.
	ErrReferenceIsRequired = errs.NewValueIsRequiredError("reference")
	// ErrConfirmationCodeIsRequired is returned when creating an order without a delivery code.
	ErrConfirmationCodeIsRequired = errs.NewValueIsRequiredError("confirmation code")
	// ErrTotalMustBePositive is returned when the order total is zero or negative.
	ErrTotalMustBePositive = errs.NewValueIsInvalidError("total must be positive")
)

// Order is the aggregate root for a pharmacy order. Its lifecycle status is
// independent of the delivery lifecycle: the order tracks the commercial
// flow (confirmation, payment, readiness), the delivery tracks the physical
// one.
//
// Invariants:
//   - Valid identifier, reference, pharmacy, and customer
//   - Monetary total strictly positive
//   - Status transitions follow the state machine in status.go
//   - The confirmation code never changes after creation; the courier must
//     present it to close the delivery
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// reference is the human-facing order number
	reference string

	// pharmacyID identifies the pharmacy fulfilling the order
	pharmacyID kernel.UUID

	// customerID identifies the ordering customer
	customerID kernel.UUID

	// total is the order's monetary value
	total kernel.Money

	// deliveryAddress is the free-text drop-off address
	deliveryAddress string

	// dropoff is the drop-off coordinate pair
	dropoff kernel.GeoPoint

	// confirmationCode is presented by the customer at hand-over
	confirmationCode string

	// status is the current lifecycle state
	status Status

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a pending Order with validation of every invariant.
func NewOrder(
	id kernel.UUID,
	reference string,
	pharmacyID kernel.UUID,
	customerID kernel.UUID,
	total kernel.Money,
	deliveryAddress string,
	dropoff kernel.GeoPoint,
	confirmationCode string,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setPharmacyID(pharmacyID),
		o.setCustomerID(customerID),
		o.setTotal(total),
		o.setDropoff(deliveryAddress, dropoff),
		o.setConfirmationCode(confirmationCode),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status.
func RestoreOrder(
	id kernel.UUID,
	reference string,
	pharmacyID kernel.UUID,
	customerID kernel.UUID,
	total kernel.Money,
	deliveryAddress string,
	dropoff kernel.GeoPoint,
	confirmationCode string,
	status Status,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setPharmacyID(pharmacyID),
		o.setCustomerID(customerID),
		o.setTotal(total),
		o.setDropoff(deliveryAddress, dropoff),
		o.setConfirmationCode(confirmationCode),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Reference returns the human-facing order number.
func (o *Order) Reference() string {
	return o.reference
}

// PharmacyID returns the fulfilling pharmacy's identifier.
func (o *Order) PharmacyID() kernel.UUID {
	return o.pharmacyID
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Total returns the order's monetary value.
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryAddress returns the free-text drop-off address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Dropoff returns the drop-off coordinates.
func (o *Order) Dropoff() kernel.GeoPoint {
	return o.dropoff
}

// ConfirmationCode returns the hand-over code.
func (o *Order) ConfirmationCode() string {
	return o.confirmationCode
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Confirm marks the order accepted by the pharmacy.
func (o *Order) Confirm() error {
	return o.transition(Status.Confirm)
}

// MarkPaid records the payment-confirmed event from the gateway boundary.
func (o *Order) MarkPaid() error {
	return o.transition(Status.Pay)
}

// MarkReady flags the order as packed; this is what triggers dispatch.
func (o *Order) MarkReady() error {
	return o.transition(Status.MarkReady)
}

// MarkDelivered closes the order after successful delivery confirmation.
func (o *Order) MarkDelivered() error {
	return o.transition(Status.Deliver)
}

// Cancel withdraws the order from any non-terminal state.
func (o *Order) Cancel() error {
	return o.transition(Status.Cancel)
}

// transition applies a status-machine step, leaving the order untouched on
// failure.
func (o *Order) transition(step func(Status) (Status, error)) error {
	newStatus, err := step(o.status)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setReference validates and sets the order reference.
func (o *Order) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}
	o.reference = reference
	return nil
}

// setPharmacyID validates and sets the pharmacy identifier.
func (o *Order) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.pharmacyID = id
	return nil
}

// setCustomerID validates and sets the customer identifier.
func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

// setTotal validates and sets the monetary total.
func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	if !total.IsPositive() {
		return ErrTotalMustBePositive
	}
	o.total = total
	return nil
}

// setDropoff validates and sets the drop-off address and coordinates.
func (o *Order) setDropoff(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if err := point.Validate(); err != nil {
		return err
	}

	o.deliveryAddress = address
	o.dropoff = point
	return nil
}

// setConfirmationCode validates and sets the hand-over code.
func (o *Order) setConfirmationCode(code string) error {
	if code == "" {
		return ErrConfirmationCodeIsRequired
	}
	o.confirmationCode = code
	return nil
}

// setStatus validates and sets the status. Used during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
