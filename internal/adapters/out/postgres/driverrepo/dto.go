// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate and owns
// the pool's atomic reservation query.
package driverrepo

import (
	"time"

	"delivery-tracking/internal/core/domain/model/driver"
	"delivery-tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The index on available speeds up the reservation scan over the pool.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:text"`
	VehicleType   string    `gorm:"type:text"`
	VehicleNumber string    `gorm:"type:text"`
	Available     bool      `gorm:"index"`
	Latitude      *float64
	Longitude     *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var latitude, longitude *float64
	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		latitude = &lat
		longitude = &lon
	}

	return DriverDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		VehicleType:   aggregate.VehicleType(),
		VehicleNumber: aggregate.VehicleNumber(),
		Available:     aggregate.IsAvailable(),
		Latitude:      latitude,
		Longitude:     longitude,
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
// Reconstructs the complete aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	return driver.RestoreDriver(id, dto.Name, dto.VehicleType, dto.VehicleNumber, dto.Available, location)
}
