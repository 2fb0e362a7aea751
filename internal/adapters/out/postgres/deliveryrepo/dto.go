// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The unique index on order_id enforces the one-delivery-per-order rule at the
// storage level; created_at orders the pending backlog for assignment.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	PickupAddress    string     `gorm:"type:text"`
	DeliveryAddress  string     `gorm:"type:text"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:text;index"`
	EstimatedMinutes *int
	Latitude         *float64
	Longitude        *float64
	PickupTime       *time.Time
	DeliveryTime     *time.Time
	Rating           *int
	Comment          *string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Maps all delivery attributes including the optional driver assignment and
// reported position.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var latitude, longitude *float64
	if location := aggregate.CurrentLocation(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		latitude = &lat
		longitude = &lon
	}

	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		PickupAddress:    aggregate.PickupAddress(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		DriverID:         driverID,
		Status:           aggregate.Status().String(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		Latitude:         latitude,
		Longitude:        longitude,
		PickupTime:       aggregate.PickupTime(),
		DeliveryTime:     aggregate.DeliveryTime(),
		Rating:           aggregate.Rating(),
		Comment:          aggregate.Comment(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}

		location = &point
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		dto.PickupAddress,
		dto.DeliveryAddress,
		driverID,
		status,
		dto.EstimatedMinutes,
		location,
		dto.PickupTime,
		dto.DeliveryTime,
		dto.Rating,
		dto.Comment,
	)
}
