// Package http exposes the application use cases over a REST API.
package http

import (
	"errors"
	"net/http"

	"delivery-tracking/internal/core/application/usecases/commands"
	"delivery-tracking/internal/core/application/usecases/queries"
	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	updateStatusHandler   commands.UpdateDeliveryStatusCommandHandler
	updateLocationHandler commands.UpdateDeliveryLocationCommandHandler
	rateDeliveryHandler   commands.RateDeliveryCommandHandler
	createDriverHandler   commands.CreateDriverCommandHandler

	// Query handlers
	getDeliveryByIDHandler       queries.GetDeliveryByIDQueryHandler
	getDeliveryByOrderIDHandler  queries.GetDeliveryByOrderIDQueryHandler
	getDeliveriesByDriverHandler queries.GetDeliveriesByDriverIDQueryHandler
	getAllDeliveriesHandler      queries.GetAllDeliveriesQueryHandler
	getAllDriversHandler         queries.GetAllDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	updateLocationHandler commands.UpdateDeliveryLocationCommandHandler,
	rateDeliveryHandler commands.RateDeliveryCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	getDeliveryByIDHandler queries.GetDeliveryByIDQueryHandler,
	getDeliveryByOrderIDHandler queries.GetDeliveryByOrderIDQueryHandler,
	getDeliveriesByDriverHandler queries.GetDeliveriesByDriverIDQueryHandler,
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:        createDeliveryHandler,
		updateStatusHandler:          updateStatusHandler,
		updateLocationHandler:        updateLocationHandler,
		rateDeliveryHandler:          rateDeliveryHandler,
		createDriverHandler:          createDriverHandler,
		getDeliveryByIDHandler:       getDeliveryByIDHandler,
		getDeliveryByOrderIDHandler:  getDeliveryByOrderIDHandler,
		getDeliveriesByDriverHandler: getDeliveriesByDriverHandler,
		getAllDeliveriesHandler:      getAllDeliveriesHandler,
		getAllDriversHandler:         getAllDriversHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.GetDeliveries)
	api.GET("/deliveries/:deliveryId", s.GetDeliveryByID)
	api.PUT("/deliveries/:deliveryId/status", s.UpdateDeliveryStatus)
	api.PUT("/deliveries/:deliveryId/location", s.UpdateDeliveryLocation)
	api.POST("/deliveries/:deliveryId/rate", s.RateDelivery)
	api.GET("/deliveries/order/:orderId", s.GetDeliveryByOrderID)
	api.GET("/deliveries/driver/:driverId", s.GetDeliveriesByDriverID)
	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.GetDrivers)

	e.GET("/health", s.Health)
}

// CreateDelivery handles POST /api/v1/deliveries - registers a new delivery.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var request CreateDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	// Orders placed without an explicit pickup point originate at the restaurant.
	if request.PickupAddress == "" {
		request.PickupAddress = "Restaurant Address"
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), orderID, request.PickupAddress, request.DeliveryAddress)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "A delivery already exists for this order",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create delivery",
		})
	}

	return ctx.JSON(http.StatusCreated, deliveryFromDomain(created))
}

// UpdateDeliveryStatus handles PUT /api/v1/deliveries/:deliveryId/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery ID: " + err.Error(),
		})
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := delivery.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Delivery not found",
			})
		case errors.Is(err, commands.ErrAssignedDriverNotFound):
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Assigned driver not found",
			})
		case errors.Is(err, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status transition: " + err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to update delivery status",
			})
		}
	}

	return ctx.JSON(http.StatusOK, deliveryFromDomain(updated))
}

// UpdateDeliveryLocation handles PUT /api/v1/deliveries/:deliveryId/location.
func (s *Server) UpdateDeliveryLocation(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery ID: " + err.Error(),
		})
	}

	var request UpdateLocationRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	location, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(deliveryID, location)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location data: " + err.Error(),
		})
	}

	updated, err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Delivery not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update delivery location",
		})
	}

	return ctx.JSON(http.StatusOK, deliveryFromDomain(updated))
}

// RateDelivery handles POST /api/v1/deliveries/:deliveryId/rate.
func (s *Server) RateDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery ID: " + err.Error(),
		})
	}

	var request RateDeliveryRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRateDeliveryCommand(deliveryID, request.Rating, request.Comment)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid rating data: " + err.Error(),
		})
	}

	rated, err := s.rateDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Delivery not found",
			})
		case errors.Is(err, errs.ErrValueIsOutOfRange):
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid rating: " + err.Error(),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to rate delivery",
			})
		}
	}

	return ctx.JSON(http.StatusOK, deliveryFromDomain(rated))
}

// GetDeliveries handles GET /api/v1/deliveries - retrieves all deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	query := queries.NewGetAllDeliveriesQuery()

	deliveries, err := s.getAllDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve deliveries",
		})
	}

	response := make([]Delivery, len(deliveries))
	for i, model := range deliveries {
		response[i] = deliveryFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryByID handles GET /api/v1/deliveries/:deliveryId.
func (s *Server) GetDeliveryByID(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetDeliveryByIDQuery(deliveryID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	model, err := s.getDeliveryByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Delivery not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery",
		})
	}

	return ctx.JSON(http.StatusOK, deliveryFromReadModel(model))
}

// GetDeliveryByOrderID handles GET /api/v1/deliveries/order/:orderId.
func (s *Server) GetDeliveryByOrderID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetDeliveryByOrderIDQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	model, err := s.getDeliveryByOrderIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Delivery not found for order",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery",
		})
	}

	return ctx.JSON(http.StatusOK, deliveryFromReadModel(model))
}

// GetDeliveriesByDriverID handles GET /api/v1/deliveries/driver/:driverId.
// An unknown driver yields an empty list, not an error.
func (s *Server) GetDeliveriesByDriverID(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetDeliveriesByDriverIDQuery(driverID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	deliveries, err := s.getDeliveriesByDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve deliveries",
		})
	}

	response := make([]Delivery, len(deliveries))
	for i, model := range deliveries {
		response[i] = deliveryFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var request CreateDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var location *kernel.GeoPoint
	if request.Latitude != nil && request.Longitude != nil {
		point, err := kernel.NewGeoPoint(*request.Latitude, *request.Longitude)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid location: " + err.Error(),
			})
		}
		location = &point
	}

	cmd, err := commands.NewCreateDriverCommand(
		kernel.NewUUID(), request.Name, request.VehicleType, request.VehicleNumber, location)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid driver data: " + err.Error(),
		})
	}

	created, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create driver: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, driverFromDomain(created))
}

// GetDrivers handles GET /api/v1/drivers - retrieves all drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve drivers",
		})
	}

	response := make([]Driver, len(drivers))
	for i, model := range drivers {
		response[i] = driverFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
