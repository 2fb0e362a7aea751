package delivery

import (
	"fmt"

	"delivery-tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// The nominal forward path is:
//
//	Pending ──> Assigned ──> PickedUp ──> Delivered
//
// Pending is also a valid resting state when no driver is available at
// creation time. Transitions outside the forward path are accepted; the
// transition side effects (timestamps, driver release) are owned by the
// Delivery aggregate and the status update command handler.
//
// Status is a value object that provides string representations for
// persistence and the HTTP boundary.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a delivery is created without an
	// available driver. Pending deliveries are waiting for assignment.
	Pending

	// Assigned indicates a driver has been reserved for the delivery.
	Assigned

	// PickedUp indicates the driver has collected the package.
	// The pickup timestamp is recorded on transition into this status.
	PickedUp

	// Delivered indicates the package has reached its destination.
	// The delivery timestamp is recorded and the driver is released on
	// transition into this status.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		Delivered: "delivered",
	}
}

// StatusFromString parses a status from its wire representation.
// Accepts "pending", "assigned", "picked_up", and "delivered".
// Returns an error for any other input, including the empty string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, PickedUp, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateAssign checks if a driver may be assigned while in this status.
//
// Valid statuses for assignment:
//   - Pending (initial assignment)
//   - Assigned (reassignment)
//
// Deliveries that are already picked up or delivered cannot be reassigned.
func (s Status) ValidateAssign() error {
	if s != Pending && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to assign a driver", s.String()),
		)
	}
	return nil
}
