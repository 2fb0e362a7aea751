package commands

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to create a delivery for an order.
// The addresses are carried as opaque strings owned by the upstream order
// service; either may be empty, in which case no time estimate is requested.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(kernel.NewUUID(), orderID, "12 Rue de la Paix", "5 Avenue Anatole")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, etaProvider)
//	created, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID      kernel.UUID
	orderID         kernel.UUID
	pickupAddress   string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Validates both identifiers; addresses are accepted as-is, empty included.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setOrderID(orderID),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the identifier of the order being delivered.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PickupAddress returns the pickup address. May be empty.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the destination address. May be empty.
func (c CreateDeliveryCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
