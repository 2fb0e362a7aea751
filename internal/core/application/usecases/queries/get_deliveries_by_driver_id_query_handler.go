package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveriesByDriverIDQueryHandler retrieves a driver's delivery history
// from the database, newest first.
type GetDeliveriesByDriverIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByDriverIDQueryHandler creates a handler for driver history queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesByDriverIDQueryHandler(db *gorm.DB) GetDeliveriesByDriverIDQueryHandler {
	return GetDeliveriesByDriverIDQueryHandler{db: db}
}

// Handle executes the query and returns the driver's deliveries.
// An unknown driver simply yields an empty result.
func (h GetDeliveriesByDriverIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByDriverIDQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanDeliveryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
