package commands

import (
	"context"
	"errors"
	"time"

	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/pkg/errs"
)

// ErrAssignedDriverNotFound is returned when completing a delivery that has
// no driver reference, or whose reference no longer resolves to a driver in
// the pool. The delivery is left unchanged so the inconsistency stays visible.
var ErrAssignedDriverNotFound = errors.New("assigned driver not found")

// UpdateDeliveryStatusCommandHandler orchestrates delivery status transitions.
//
// The aggregate owns timestamp side effects; the handler owns the
// cross-aggregate one: completing a delivery returns its driver to the pool
// within the same transaction, so a released driver and an unfinished
// delivery can never be observed together.
//
// Example:
//
//	handler := NewUpdateDeliveryStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateDeliveryStatusCommand(deliveryID, delivery.Delivered)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such delivery")
//	case errors.Is(err, ErrAssignedDriverNotFound):
//	    log.Println("Delivery references a driver that no longer exists")
//	case err != nil:
//	    log.Printf("Status update failed: %v", err)
//	}
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status update operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command and returns the updated aggregate.
//
// Moving to Delivered releases the assigned driver before the delivery is
// mutated; if the driver reference is missing or dangling the command fails
// with ErrAssignedDriverNotFound and the delivery keeps its previous state.
func (h UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (*delivery.Delivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if cmd.Status() == delivery.Delivered {
		if aggregate.DriverID() == nil {
			return nil, ErrAssignedDriverNotFound
		}

		err = uow.DriverRepository().Release(ctx, *aggregate.DriverID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrAssignedDriverNotFound
		}
		if err != nil {
			return nil, err
		}
	}

	if err = aggregate.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
