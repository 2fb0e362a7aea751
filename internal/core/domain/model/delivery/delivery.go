package delivery

import (
	"errors"
	"fmt"
	"time"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/errs"
	"delivery-tracking/internal/pkg/guard"
)

const (
	// RatingMin is the lowest accepted customer rating.
	RatingMin = 1
	// RatingMax is the highest accepted customer rating.
	RatingMax = 5
)

// ErrDeliveryIsNotConstructed is returned when attempting to use an improperly
// initialized Delivery. Deliveries must be created via NewDelivery or
// RestoreDelivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the aggregate root of the delivery lifecycle.
//
// A delivery is created for exactly one order and moves through the status
// lifecycle (see Status). The aggregate owns every lifecycle side effect that
// does not require another aggregate: recording pickup and delivery timestamps
// exactly once, keeping the driver reference consistent with the status, and
// validating customer ratings. Releasing the driver on completion is
// coordinated by the status update command handler, since it mutates the
// Driver aggregate.
//
// The zero value is invalid; use NewDelivery for new deliveries and
// RestoreDelivery when rehydrating from storage.
type Delivery struct {
	id               kernel.UUID
	orderID          kernel.UUID
	pickupAddress    string
	deliveryAddress  string
	driverID         *kernel.UUID
	status           Status
	estimatedMinutes *int
	currentLocation  *kernel.GeoPoint
	pickupTime       *time.Time
	deliveryTime     *time.Time
	rating           *int
	comment          *string

	guard guard.ConstructorGuard
}

// NewDelivery creates a new delivery for an order in the Pending status.
//
// Addresses are carried as opaque strings owned by the upstream order
// service; either may be empty. The delivery starts without a driver,
// location, estimate, timestamps, or rating.
//
// Returns an error if either identifier is invalid.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, pickupAddress string, deliveryAddress string) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		id:              id,
		orderID:         orderID,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		status:          Pending,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreDelivery reconstructs a delivery from persisted state.
//
// Unlike NewDelivery, this constructor accepts any lifecycle state and is
// intended for repository use only. It validates identifiers, the status,
// and the optional driver reference and location, but does not re-run
// transition rules: persisted state is trusted to have been produced by the
// aggregate itself.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	driverID *kernel.UUID,
	status Status,
	estimatedMinutes *int,
	currentLocation *kernel.GeoPoint,
	pickupTime *time.Time,
	deliveryTime *time.Time,
	rating *int,
	comment *string,
) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if currentLocation != nil {
		if err := currentLocation.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:               id,
		orderID:          orderID,
		pickupAddress:    pickupAddress,
		deliveryAddress:  deliveryAddress,
		driverID:         driverID,
		status:           status,
		estimatedMinutes: estimatedMinutes,
		currentLocation:  currentLocation,
		pickupTime:       pickupTime,
		deliveryTime:     deliveryTime,
		rating:           rating,
		comment:          comment,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Delivery was properly constructed.
func (d *Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order this delivery fulfills.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// PickupAddress returns the pickup address. May be empty.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// DeliveryAddress returns the destination address. May be empty.
func (d *Delivery) DeliveryAddress() string {
	return d.deliveryAddress
}

// DriverID returns the assigned driver's identifier, or nil while the
// delivery is unassigned.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// EstimatedMinutes returns the estimated delivery time in minutes, or nil
// when no estimate could be obtained at creation time.
func (d *Delivery) EstimatedMinutes() *int {
	return d.estimatedMinutes
}

// CurrentLocation returns the driver's last reported position, or nil if
// no position has been reported yet.
func (d *Delivery) CurrentLocation() *kernel.GeoPoint {
	return d.currentLocation
}

// PickupTime returns when the package was picked up, or nil before pickup.
func (d *Delivery) PickupTime() *time.Time {
	return d.pickupTime
}

// DeliveryTime returns when the package was delivered, or nil before
// completion.
func (d *Delivery) DeliveryTime() *time.Time {
	return d.deliveryTime
}

// Rating returns the customer rating, or nil if the delivery has not been
// rated.
func (d *Delivery) Rating() *int {
	return d.rating
}

// Comment returns the customer's rating comment, or nil.
func (d *Delivery) Comment() *string {
	return d.comment
}

// Assign assigns a driver to the delivery and moves it to Assigned.
//
// Assignment is only allowed while the delivery is Pending or Assigned;
// a delivery that is already in transit or completed cannot be reassigned.
func (d *Delivery) Assign(driverID kernel.UUID) error {
	if err := errors.Join(d.Validate(), driverID.Validate(), d.status.ValidateAssign()); err != nil {
		return err
	}

	d.driverID = &driverID
	d.status = Assigned
	return nil
}

// SetEstimatedMinutes records the estimated delivery time obtained from the
// routing provider. A negative estimate is rejected.
func (d *Delivery) SetEstimatedMinutes(minutes int) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedMinutes", fmt.Errorf("%d minutes is negative", minutes))
	}

	d.estimatedMinutes = &minutes
	return nil
}

// ChangeStatus moves the delivery to newStatus and applies the transition
// side effects owned by the aggregate:
//
//   - entering PickedUp records the pickup time, once;
//   - entering Delivered records the delivery time, once.
//
// Timestamps are never overwritten by repeated or out-of-order updates, and
// the delivery time may not precede the pickup time. Which driver-side
// effects accompany a transition (releasing the driver on Delivered) is the
// command handler's concern.
func (d *Delivery) ChangeStatus(newStatus Status, now time.Time) error {
	if err := errors.Join(d.Validate(), newStatus.Validate()); err != nil {
		return err
	}

	switch newStatus {
	case PickedUp:
		if d.pickupTime == nil {
			d.pickupTime = &now
		}
	case Delivered:
		if d.pickupTime != nil && now.Before(*d.pickupTime) {
			return errs.NewValueIsInvalidErrorWithCause(
				"deliveryTime", fmt.Errorf("delivery time %s precedes pickup time %s", now, *d.pickupTime))
		}
		if d.deliveryTime == nil {
			d.deliveryTime = &now
		}
	case Unknown, Pending, Assigned:
		// No timestamp side effects.
	}

	d.status = newStatus
	return nil
}

// UpdateLocation records the driver's current position.
func (d *Delivery) UpdateLocation(location kernel.GeoPoint) error {
	if err := errors.Join(d.Validate(), location.Validate()); err != nil {
		return err
	}

	d.currentLocation = &location
	return nil
}

// Rate records the customer's rating and optional comment.
//
// The rating must be within [RatingMin..RatingMax]. Rating is allowed in any
// lifecycle state and may be overwritten by a subsequent rating.
func (d *Delivery) Rate(rating int, comment *string) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}

	d.rating = &rating
	d.comment = comment
	return nil
}

// Equals compares two deliveries by identity.
func (d *Delivery) Equals(other *Delivery) (bool, error) {
	if other == nil {
		return false, errs.NewValueIsRequiredError("other")
	}
	if err := errors.Join(d.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return d.id.IsEqual(other.id), nil
}
