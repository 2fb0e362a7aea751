package queries

import (
	"errors"

	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves every driver in the pool.
//
// Example:
//
//	query := NewGetAllDriversQuery()
//	handler := NewGetAllDriversQueryHandler(db)
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list drivers: %w", err)
//	}
//	for _, d := range drivers {
//	    fmt.Printf("%s (%s) available=%t\n", d.Name, d.VehicleType, d.Available)
//	}
type GetAllDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a query to list all drivers.
// This is a parameterless query.
func NewGetAllDriversQuery() GetAllDriversQuery {
	return GetAllDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllDriversQueryIsNotConstructed if validation fails.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// DriverResponse represents driver information for read operations.
type DriverResponse struct {
	ID            kernel.UUID
	Name          string
	VehicleType   string
	VehicleNumber string
	Available     bool
	Location      *kernel.GeoPoint
}
