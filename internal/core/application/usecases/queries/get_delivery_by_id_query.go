package queries

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/guard"
)

var ErrGetDeliveryByIDQueryIsNotConstructed = errors.New(
	"GetDeliveryByIDQuery must be created via NewGetDeliveryByIDQuery constructor",
)

// GetDeliveryByIDQuery retrieves a single delivery by its identifier.
//
// Example:
//
//	query, err := NewGetDeliveryByIDQuery(deliveryID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetDeliveryByIDQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
type GetDeliveryByIDQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByIDQuery creates a query to retrieve a delivery by identifier.
func NewGetDeliveryByIDQuery(deliveryID kernel.UUID) (GetDeliveryByIDQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryByIDQuery{}, err
	}

	return GetDeliveryByIDQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryByIDQueryIsNotConstructed if validation fails.
func (q GetDeliveryByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByIDQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to look up.
func (q GetDeliveryByIDQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
