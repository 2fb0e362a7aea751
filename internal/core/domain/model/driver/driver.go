package driver

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/errs"
	"delivery-tracking/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when attempting to use an improperly
// initialized Driver. Drivers must be created via NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errs.NewValueIsRequiredError(
	"driver must be created via NewDriver or RestoreDriver constructor")

// Driver is the aggregate root of the driver pool.
//
// A driver is either available for assignment or busy with a delivery.
// Availability is the only mutable lifecycle state: deliveries reserve a
// driver (MarkBusy) on assignment and release them (MarkAvailable) on
// completion. Exactly-once reservation under concurrent assignment is the
// repository's job; the aggregate only carries the flag.
type Driver struct {
	id            kernel.UUID
	name          string
	vehicleType   string
	vehicleNumber string
	available     bool
	location      *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewDriver creates a new driver that is immediately available for
// assignment. Name, vehicle type and vehicle number are required; the
// starting location is optional.
func NewDriver(id kernel.UUID, name string, vehicleType string, vehicleNumber string, location *kernel.GeoPoint) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if vehicleType == "" {
		return nil, errs.NewValueIsRequiredError("vehicleType")
	}
	if vehicleNumber == "" {
		return nil, errs.NewValueIsRequiredError("vehicleNumber")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Driver{
		id:            id,
		name:          name,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		available:     true,
		location:      location,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver reconstructs a driver from persisted state.
// Intended for repository use only.
func RestoreDriver(id kernel.UUID, name string, vehicleType string, vehicleNumber string, available bool, location *kernel.GeoPoint) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Driver{
		id:            id,
		name:          name,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		available:     available,
		location:      location,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Driver was properly constructed.
func (d *Driver) Validate() error {
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// VehicleType returns the driver's vehicle type, e.g. "bike" or "car".
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// VehicleNumber returns the vehicle's registration number.
func (d *Driver) VehicleNumber() string {
	return d.vehicleNumber
}

// IsAvailable reports whether the driver can take a new delivery.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// Location returns the driver's last known position, or nil.
func (d *Driver) Location() *kernel.GeoPoint {
	return d.location
}

// MarkBusy reserves the driver for a delivery.
// Reserving an already busy driver is an error; callers must obtain drivers
// through the repository's reservation query.
func (d *Driver) MarkBusy() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.available {
		return errs.NewValueIsInvalidError("driver is already busy")
	}

	d.available = false
	return nil
}

// MarkAvailable returns the driver to the pool.
// Releasing an already available driver is a no-op so completion retries
// stay idempotent.
func (d *Driver) MarkAvailable() error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.available = true
	return nil
}

// SetLocation updates the driver's last known position.
func (d *Driver) SetLocation(location kernel.GeoPoint) error {
	if err := errors.Join(d.Validate(), location.Validate()); err != nil {
		return err
	}

	d.location = &location
	return nil
}

// Equals compares two drivers by identity.
func (d *Driver) Equals(other *Driver) (bool, error) {
	if other == nil {
		return false, errs.NewValueIsRequiredError("other")
	}
	if err := errors.Join(d.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return d.id.IsEqual(other.id), nil
}
