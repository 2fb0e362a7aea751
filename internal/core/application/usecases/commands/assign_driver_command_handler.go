package commands

import (
	"context"
	"errors"

	"delivery-tracking/internal/pkg/errs"
)

var (
	ErrNoAvailableDriversFound  = errors.New("no available drivers found")
	ErrNoPendingDeliveriesFound = errors.New("no pending deliveries found")
)

// AssignDriverCommandHandler orchestrates the backlog assignment process.
// Finds the oldest pending delivery and reserves an available driver for it.
// Ensures transactional consistency when updating both delivery and driver states.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	cmd := NewAssignDriverCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingDeliveriesFound):
//	    log.Println("No backlog")
//	case errors.Is(err, ErrNoAvailableDriversFound):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Driver assigned successfully")
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for backlog assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// Retrieves the oldest pending delivery, reserves an available driver, and
// assigns them within a single transaction. Returns specific errors for an
// empty backlog (ErrNoPendingDeliveriesFound) or an exhausted pool
// (ErrNoAvailableDriversFound).
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	pending, err := deliveryRepo.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingDeliveriesFound
	}
	if err != nil {
		return err
	}

	reserved, err := uow.DriverRepository().ReserveFirstAvailable(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoAvailableDriversFound
	}
	if err != nil {
		return err
	}

	if err = pending.Assign(reserved.ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, pending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
