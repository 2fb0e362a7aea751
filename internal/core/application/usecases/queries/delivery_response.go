// Package queries contains read operations that bypass the domain model.
// Implements the Query side of the CQRS architecture: handlers read
// denormalized rows straight from the database and return read models,
// never aggregates.
package queries

import (
	"database/sql"
	"time"

	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryResponse is the read model shared by all delivery queries.
// Optional fields are nil when the underlying column is NULL.
type DeliveryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	PickupAddress    string
	DeliveryAddress  string
	DriverID         *kernel.UUID
	Status           delivery.Status
	EstimatedMinutes *int
	CurrentLocation  *kernel.GeoPoint
	PickupTime       *time.Time
	DeliveryTime     *time.Time
	Rating           *int
	Comment          *string
}

// deliveryColumns is the column list every delivery query selects,
// in the order scanDeliveryRow expects.
const deliveryColumns = `
	id,
	order_id,
	pickup_address,
	delivery_address,
	driver_id,
	status,
	estimated_minutes,
	latitude,
	longitude,
	pickup_time,
	delivery_time,
	rating,
	comment
`

// scanDeliveryRow converts one deliveries row into the read model.
func scanDeliveryRow(rows *sql.Rows) (DeliveryResponse, error) {
	var (
		response         DeliveryResponse
		id               uuid.UUID
		orderID          uuid.UUID
		driverID         uuid.NullUUID
		status           string
		estimatedMinutes sql.NullInt64
		latitude         sql.NullFloat64
		longitude        sql.NullFloat64
		pickupTime       sql.NullTime
		deliveryTime     sql.NullTime
		rating           sql.NullInt64
		comment          sql.NullString
	)

	err := rows.Scan(
		&id,
		&orderID,
		&response.PickupAddress,
		&response.DeliveryAddress,
		&driverID,
		&status,
		&estimatedMinutes,
		&latitude,
		&longitude,
		&pickupTime,
		&deliveryTime,
		&rating,
		&comment,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if driverID.Valid {
		converted, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return DeliveryResponse{}, idErr
		}
		response.DriverID = &converted
	}

	if response.Status, err = delivery.StatusFromString(status); err != nil {
		return DeliveryResponse{}, err
	}

	if estimatedMinutes.Valid {
		minutes := int(estimatedMinutes.Int64)
		response.EstimatedMinutes = &minutes
	}
	if latitude.Valid && longitude.Valid {
		location, locErr := kernel.NewGeoPoint(latitude.Float64, longitude.Float64)
		if locErr != nil {
			return DeliveryResponse{}, locErr
		}
		response.CurrentLocation = &location
	}
	if pickupTime.Valid {
		response.PickupTime = &pickupTime.Time
	}
	if deliveryTime.Valid {
		response.DeliveryTime = &deliveryTime.Time
	}
	if rating.Valid {
		value := int(rating.Int64)
		response.Rating = &value
	}
	if comment.Valid {
		response.Comment = &comment.String
	}

	return response, nil
}
