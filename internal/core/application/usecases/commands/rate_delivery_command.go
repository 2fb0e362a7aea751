package commands

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/errs"
	"delivery-tracking/internal/pkg/guard"
)

var ErrRateDeliveryCommandIsNotConstructed = errors.New(
	"RateDeliveryCommand must be created via NewRateDeliveryCommand constructor",
)

// RateDeliveryCommand represents a customer rating for a delivery.
//
// Example:
//
//	comment := "left at the door as asked"
//	cmd, err := NewRateDeliveryCommand(deliveryID, 5, &comment)
//	if err != nil {
//	    return fmt.Errorf("invalid rating: %w", err)
//	}
type RateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	rating     int
	comment    *string

	guard guard.ConstructorGuard
}

// NewRateDeliveryCommand creates a command to rate a delivery.
// The rating must be within [delivery.RatingMin..delivery.RatingMax];
// the comment is optional.
func NewRateDeliveryCommand(deliveryID kernel.UUID, rating int, comment *string) (RateDeliveryCommand, error) {
	command := RateDeliveryCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setRating(rating),
	); err != nil {
		return RateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRateDeliveryCommandIsNotConstructed if validation fails.
func (c RateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being rated.
func (c RateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Rating returns the customer rating.
func (c RateDeliveryCommand) Rating() int {
	return c.rating
}

// Comment returns the optional rating comment.
func (c RateDeliveryCommand) Comment() *string {
	return c.comment
}

func (c *RateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RateDeliveryCommand) setRating(rating int) error {
	if rating < delivery.RatingMin || rating > delivery.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, delivery.RatingMin, delivery.RatingMax)
	}

	c.rating = rating
	return nil
}
