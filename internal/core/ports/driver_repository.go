package ports

import (
	"context"

	"delivery-tracking/internal/core/domain/model/driver"
	"delivery-tracking/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
//
// Besides plain CRUD it owns the pool's reservation primitive: handing out
// an available driver to exactly one caller even when assignments run
// concurrently.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves every driver in the pool.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// ReserveFirstAvailable atomically claims an available driver and marks
	// them busy, returning the reserved aggregate. Two concurrent calls never
	// receive the same driver: the row is locked for the duration of the
	// surrounding transaction and competing transactions skip it. Returns an
	// errs.ObjectNotFoundError when the pool has no available driver.
	ReserveFirstAvailable(ctx context.Context) (*driver.Driver, error)

	// Release returns a driver to the pool by marking them available.
	// Releasing an unknown driver returns an errs.ObjectNotFoundError.
	Release(ctx context.Context, id kernel.UUID) error
}
