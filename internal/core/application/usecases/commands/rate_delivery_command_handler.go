package commands

import (
	"context"

	"delivery-tracking/internal/core/domain/model/delivery"
)

// RateDeliveryCommandHandler records customer ratings.
// Rating is allowed in any lifecycle state and a repeated rating overwrites
// the previous one.
type RateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRateDeliveryCommandHandler creates a handler for rating operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewRateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RateDeliveryCommandHandler {
	return RateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command and returns the updated aggregate.
// Fails with errs.ErrObjectNotFound when the delivery does not exist.
func (h RateDeliveryCommandHandler) Handle(ctx context.Context, cmd RateDeliveryCommand) (*delivery.Delivery, error) {
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

	if err = aggregate.Rate(cmd.Rating(), cmd.Comment()); err != nil {
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
