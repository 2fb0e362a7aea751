package queries

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/guard"
)

var ErrGetDeliveriesByDriverIDQueryIsNotConstructed = errors.New(
	"GetDeliveriesByDriverIDQuery must be created via NewGetDeliveriesByDriverIDQuery constructor",
)

// GetDeliveriesByDriverIDQuery retrieves every delivery assigned to a driver,
// completed ones included. Used for driver history and workload views.
type GetDeliveriesByDriverIDQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByDriverIDQuery creates a query to retrieve a driver's deliveries.
func NewGetDeliveriesByDriverIDQuery(driverID kernel.UUID) (GetDeliveriesByDriverIDQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDeliveriesByDriverIDQuery{}, err
	}

	return GetDeliveriesByDriverIDQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesByDriverIDQueryIsNotConstructed if validation fails.
func (q GetDeliveriesByDriverIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByDriverIDQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver whose deliveries are looked up.
func (q GetDeliveriesByDriverIDQuery) DriverID() kernel.UUID {
	return q.driverID
}
