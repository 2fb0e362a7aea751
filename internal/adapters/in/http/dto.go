package http

import (
	"time"

	"delivery-tracking/internal/core/application/usecases/queries"
	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/domain/model/driver"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the payload for POST /api/v1/deliveries.
// Addresses are optional; without both of them no time estimate is requested.
type CreateDeliveryRequest struct {
	OrderID         string `json:"orderId"`
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// UpdateStatusRequest is the payload for PUT /api/v1/deliveries/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateLocationRequest is the payload for PUT /api/v1/deliveries/:id/location.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RateDeliveryRequest is the payload for POST /api/v1/deliveries/:id/rate.
type RateDeliveryRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// CreateDriverRequest is the payload for POST /api/v1/drivers.
// The starting position is optional and only used when both coordinates
// are present.
type CreateDriverRequest struct {
	Name          string   `json:"name"`
	VehicleType   string   `json:"vehicleType"`
	VehicleNumber string   `json:"vehicleNumber"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// GeoPoint is the wire representation of a position.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Delivery is the wire representation of a delivery.
type Delivery struct {
	ID               string     `json:"id"`
	OrderID          string     `json:"orderId"`
	PickupAddress    string     `json:"pickupAddress"`
	DeliveryAddress  string     `json:"deliveryAddress"`
	DriverID         *string    `json:"driverId,omitempty"`
	Status           string     `json:"status"`
	EstimatedMinutes *int       `json:"estimatedMinutes,omitempty"`
	CurrentLocation  *GeoPoint  `json:"currentLocation,omitempty"`
	PickupTime       *time.Time `json:"pickupTime,omitempty"`
	DeliveryTime     *time.Time `json:"deliveryTime,omitempty"`
	Rating           *int       `json:"rating,omitempty"`
	Comment          *string    `json:"comment,omitempty"`
}

// Driver is the wire representation of a driver.
type Driver struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	VehicleType   string    `json:"vehicleType"`
	VehicleNumber string    `json:"vehicleNumber"`
	Available     bool      `json:"available"`
	Location      *GeoPoint `json:"location,omitempty"`
}

// deliveryFromDomain maps a delivery aggregate to its wire representation.
// Used by command endpoints, which return the mutated aggregate.
func deliveryFromDomain(aggregate *delivery.Delivery) Delivery {
	response := Delivery{
		ID:               aggregate.ID().String(),
		OrderID:          aggregate.OrderID().String(),
		PickupAddress:    aggregate.PickupAddress(),
		DeliveryAddress:  aggregate.DeliveryAddress(),
		Status:           aggregate.Status().String(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		PickupTime:       aggregate.PickupTime(),
		DeliveryTime:     aggregate.DeliveryTime(),
		Rating:           aggregate.Rating(),
		Comment:          aggregate.Comment(),
	}

	if id := aggregate.DriverID(); id != nil {
		value := id.String()
		response.DriverID = &value
	}
	if location := aggregate.CurrentLocation(); location != nil {
		response.CurrentLocation = &GeoPoint{
			Latitude:  location.Latitude(),
			Longitude: location.Longitude(),
		}
	}

	return response
}

// deliveryFromReadModel maps a query read model to its wire representation.
func deliveryFromReadModel(model queries.DeliveryResponse) Delivery {
	response := Delivery{
		ID:               model.ID.String(),
		OrderID:          model.OrderID.String(),
		PickupAddress:    model.PickupAddress,
		DeliveryAddress:  model.DeliveryAddress,
		Status:           model.Status.String(),
		EstimatedMinutes: model.EstimatedMinutes,
		PickupTime:       model.PickupTime,
		DeliveryTime:     model.DeliveryTime,
		Rating:           model.Rating,
		Comment:          model.Comment,
	}

	if model.DriverID != nil {
		value := model.DriverID.String()
		response.DriverID = &value
	}
	if model.CurrentLocation != nil {
		response.CurrentLocation = &GeoPoint{
			Latitude:  model.CurrentLocation.Latitude(),
			Longitude: model.CurrentLocation.Longitude(),
		}
	}

	return response
}

// driverFromDomain maps a driver aggregate to its wire representation.
func driverFromDomain(aggregate *driver.Driver) Driver {
	response := Driver{
		ID:            aggregate.ID().String(),
		Name:          aggregate.Name(),
		VehicleType:   aggregate.VehicleType(),
		VehicleNumber: aggregate.VehicleNumber(),
		Available:     aggregate.IsAvailable(),
	}

	if location := aggregate.Location(); location != nil {
		response.Location = &GeoPoint{
			Latitude:  location.Latitude(),
			Longitude: location.Longitude(),
		}
	}

	return response
}

// driverFromReadModel maps a driver read model to its wire representation.
func driverFromReadModel(model queries.DriverResponse) Driver {
	response := Driver{
		ID:            model.ID.String(),
		Name:          model.Name,
		VehicleType:   model.VehicleType,
		VehicleNumber: model.VehicleNumber,
		Available:     model.Available,
	}

	if model.Location != nil {
		response.Location = &GeoPoint{
			Latitude:  model.Location.Latitude(),
			Longitude: model.Location.Longitude(),
		}
	}

	return response
}
