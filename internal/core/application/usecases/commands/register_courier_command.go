package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a request to register a new courier.
// The courier starts in pending approval and cannot take deliveries until
// approved.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	vehicle   kernel.VehicleType

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a courier.
func NewRegisterCourierCommand(courierID kernel.UUID, name string, vehicle kernel.VehicleType) (RegisterCourierCommand, error) {
	cmd := RegisterCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setName(name),
		cmd.setVehicle(vehicle),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// CourierID returns the identifier for the new courier.
func (c RegisterCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the courier's display name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Vehicle returns the courier's vehicle type.
func (c RegisterCourierCommand) Vehicle() kernel.VehicleType {
	return c.vehicle
}

func (c *RegisterCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}

func (c *RegisterCourierCommand) setName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	c.name = name
	return nil
}

func (c *RegisterCourierCommand) setVehicle(vehicle kernel.VehicleType) error {
	if vehicle == "" {
		return errors.New("vehicle is required")
	}
	c.vehicle = vehicle
	return nil
}
