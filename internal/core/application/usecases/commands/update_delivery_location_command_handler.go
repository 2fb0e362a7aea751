package commands

import (
	"context"

	"delivery-tracking/internal/core/domain/model/delivery"
)

// UpdateDeliveryLocationCommandHandler records driver position reports
// against the delivery they belong to.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryLocationCommandHandler creates a handler for location update operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewUpdateDeliveryLocationCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update command and returns the updated aggregate.
// Fails with errs.ErrObjectNotFound when the delivery does not exist.
func (h UpdateDeliveryLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryLocationCommand,
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

	if err = aggregate.UpdateLocation(cmd.Location()); err != nil {
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
