package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired  = errors.New("delivery address is required")
	ErrReferenceIsRequired        = errors.New("reference is required")
	ErrConfirmationCodeIsRequired = errors.New("confirmation code is required")
)

// CreateOrderCommand represents a request to register a new pharmacy
// order. The order enters the commercial lifecycle in pending status;
// dispatch happens later, when it reaches ready.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	reference        string
	pharmacyID       kernel.UUID
	customerID       kernel.UUID
	total            kernel.Money
	deliveryAddress  string
	dropoff          kernel.GeoPoint
	confirmationCode string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	reference string,
	pharmacyID kernel.UUID,
	customerID kernel.UUID,
	total kernel.Money,
	deliveryAddress string,
	dropoff kernel.GeoPoint,
	confirmationCode string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, pharmacyID, customerID),
		cmd.setReference(reference),
		cmd.setTotal(total),
		cmd.setDropoff(deliveryAddress, dropoff),
		cmd.setConfirmationCode(confirmationCode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Reference returns the human-facing order number.
func (c CreateOrderCommand) Reference() string { return c.reference }

// PharmacyID returns the fulfilling pharmacy's identifier.
func (c CreateOrderCommand) PharmacyID() kernel.UUID { return c.pharmacyID }

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// Total returns the order's monetary value.
func (c CreateOrderCommand) Total() kernel.Money { return c.total }

// DeliveryAddress returns the free-text drop-off address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// Dropoff returns the drop-off coordinates.
func (c CreateOrderCommand) Dropoff() kernel.GeoPoint { return c.dropoff }

// ConfirmationCode returns the hand-over code.
func (c CreateOrderCommand) ConfirmationCode() string { return c.confirmationCode }

func (c *CreateOrderCommand) setIDs(orderID, pharmacyID, customerID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), pharmacyID.Validate(), customerID.Validate()); err != nil {
		return err
	}
	c.orderID = orderID
	c.pharmacyID = pharmacyID
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}
	c.reference = reference
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	c.total = total
	return nil
}

func (c *CreateOrderCommand) setDropoff(address string, point kernel.GeoPoint) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	if err := point.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = address
	c.dropoff = point
	return nil
}

func (c *CreateOrderCommand) setConfirmationCode(code string) error {
	if code == "" {
		return ErrConfirmationCodeIsRequired
	}
	c.confirmationCode = code
	return nil
}
