package queries

import (
	"context"

	"delivery-tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByIDQueryHandler retrieves a single delivery from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveryByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByIDQueryHandler creates a handler for single-delivery lookups.
// Requires a GORM database connection for query execution.
func NewGetDeliveryByIDQueryHandler(db *gorm.DB) GetDeliveryByIDQueryHandler {
	return GetDeliveryByIDQueryHandler{db: db}
}

// Handle executes the lookup and returns the delivery read model.
// Returns an errs.ObjectNotFoundError when no delivery matches the identifier.
func (h GetDeliveryByIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByIDQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryID", query.DeliveryID())
	}

	return scanDeliveryRow(rows)
}
