// Package ports defines the contracts between the application core and
// infrastructure. These interfaces establish transaction, persistence, and
// outbound-service boundaries, enabling dependency inversion and testability.
package ports

import (
	"context"

	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	// Each order may have at most one delivery; adding a second delivery
	// for the same order is rejected by storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery created for the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetFirstPending retrieves the oldest delivery still waiting for a
	// driver. Used by the assignment job to drain the pending backlog.
	GetFirstPending(ctx context.Context) (*delivery.Delivery, error)

	// GetAllByDriverID retrieves all deliveries ever assigned to a driver,
	// newest first.
	GetAllByDriverID(ctx context.Context, driverID kernel.UUID) ([]*delivery.Delivery, error)
}
