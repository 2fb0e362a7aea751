package ports

import (
	"context"
)

// ETAProvider estimates delivery time between two addresses.
//
// Implementations talk to an external routing service and are expected to
// bound each call with a timeout. Estimation is best effort: callers treat
// any error as "no estimate available" and proceed without one.
type ETAProvider interface {
	// Estimate returns the estimated delivery time in minutes for a route
	// from pickupAddress to deliveryAddress.
	Estimate(ctx context.Context, pickupAddress string, deliveryAddress string) (int, error)
}
