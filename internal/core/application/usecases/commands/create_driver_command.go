package commands

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/errs"
	"delivery-tracking/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a new driver in the pool.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand(kernel.NewUUID(), "Marco", "bike", "AB-123-CD", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	name          string
	vehicleType   string
	vehicleNumber string
	location      *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Name, vehicle type and vehicle number are required; the starting location
// is optional.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name string,
	vehicleType string,
	vehicleNumber string,
	location *kernel.GeoPoint,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setName(name),
		command.setVehicle(vehicleType, vehicleNumber),
		command.setLocation(location),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDriverCommandIsNotConstructed if validation fails.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// VehicleType returns the driver's vehicle type.
func (c CreateDriverCommand) VehicleType() string {
	return c.vehicleType
}

// VehicleNumber returns the vehicle's registration number.
func (c CreateDriverCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// Location returns the driver's optional starting position.
func (c CreateDriverCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setVehicle(vehicleType, vehicleNumber string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	if vehicleNumber == "" {
		return errs.NewValueIsRequiredError("vehicleNumber")
	}

	c.vehicleType = vehicleType
	c.vehicleNumber = vehicleNumber
	return nil
}

func (c *CreateDriverCommand) setLocation(location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	c.location = location
	return nil
}
