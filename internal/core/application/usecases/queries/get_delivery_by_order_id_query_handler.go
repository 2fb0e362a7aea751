package queries

import (
	"context"

	"delivery-tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByOrderIDQueryHandler resolves an order to its delivery.
// This is the lookup order services use to track fulfillment.
type GetDeliveryByOrderIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderIDQueryHandler creates a handler for order-based lookups.
// Requires a GORM database connection for query execution.
func NewGetDeliveryByOrderIDQueryHandler(db *gorm.DB) GetDeliveryByOrderIDQueryHandler {
	return GetDeliveryByOrderIDQueryHandler{db: db}
}

// Handle executes the lookup and returns the delivery read model.
// Returns an errs.ObjectNotFoundError when the order has no delivery.
func (h GetDeliveryByOrderIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderIDQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return scanDeliveryRow(rows)
}
