package queries

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/guard"
)

var ErrGetDeliveryByOrderIDQueryIsNotConstructed = errors.New(
	"GetDeliveryByOrderIDQuery must be created via NewGetDeliveryByOrderIDQuery constructor",
)

// GetDeliveryByOrderIDQuery retrieves the delivery created for an order.
// Since each order has at most one delivery, the lookup returns a single
// read model.
type GetDeliveryByOrderIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderIDQuery creates a query to retrieve a delivery by its order.
func NewGetDeliveryByOrderIDQuery(orderID kernel.UUID) (GetDeliveryByOrderIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryByOrderIDQuery{}, err
	}

	return GetDeliveryByOrderIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryByOrderIDQueryIsNotConstructed if validation fails.
func (q GetDeliveryByOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose delivery is looked up.
func (q GetDeliveryByOrderIDQuery) OrderID() kernel.UUID {
	return q.orderID
}
