package commands

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand represents a driver position report for a
// delivery in progress.
//
// Example:
//
//	location, _ := kernel.NewGeoPoint(48.8566, 2.3522)
//	cmd, err := NewUpdateDeliveryLocationCommand(deliveryID, location)
//	if err != nil {
//	    return fmt.Errorf("invalid location update: %w", err)
//	}
type UpdateDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryLocationCommand creates a command to record a driver position.
// Validates the identifier and that the position was properly constructed.
func NewUpdateDeliveryLocationCommand(deliveryID kernel.UUID, location kernel.GeoPoint) (UpdateDeliveryLocationCommand, error) {
	command := UpdateDeliveryLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setLocation(location),
	); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDeliveryLocationCommandIsNotConstructed if validation fails.
func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being tracked.
func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Location returns the reported driver position.
func (c UpdateDeliveryLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateDeliveryLocationCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
