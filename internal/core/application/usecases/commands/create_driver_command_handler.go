package commands

import (
	"context"

	"delivery-tracking/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles the business logic for driver registration.
// New drivers join the pool immediately available for assignment.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration operations.
// Requires a DriverUoWFactory for transactional persistence.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command and returns the created aggregate.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := driver.NewDriver(cmd.DriverID(), cmd.Name(), cmd.VehicleType(), cmd.VehicleNumber(), cmd.Location())
	if err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
