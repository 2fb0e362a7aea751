package commands

import (
	"context"
	"errors"

	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/ports"
	"delivery-tracking/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles the business logic for delivery creation.
//
// Creation requests a time estimate from the routing provider, then tries to
// reserve a driver from the pool. When a driver is available the delivery is
// created already assigned; when the pool is empty it is created in the
// pending status and picked up later by the assignment job. Both outcomes
// are successful creations.
//
// The estimate call runs before the transaction is opened so a slow routing
// provider never holds database locks, and its failure is absorbed: the
// delivery is simply created without an estimate.
type CreateDeliveryCommandHandler struct {
	uowFactory  UoWFactory
	etaProvider ports.ETAProvider
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation operations.
// Requires a UoWFactory for coordinating transactional updates across
// repositories and an ETAProvider for the best-effort time estimate.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory, etaProvider ports.ETAProvider) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory:  uowFactory,
		etaProvider: etaProvider,
	}
}

// Handle processes the delivery creation command and returns the created
// aggregate.
//
// An exhausted driver pool is not an error: the delivery is persisted in the
// pending status without a driver. Estimate failures are likewise absorbed.
// Creation only fails on validation errors or storage failures, including
// the case where the order already has a delivery.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	minutes, etaErr := h.estimate(ctx, cmd.PickupAddress(), cmd.DeliveryAddress())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.OrderID(), cmd.PickupAddress(), cmd.DeliveryAddress())
	if err != nil {
		return nil, err
	}

	if etaErr == nil {
		if err = aggregate.SetEstimatedMinutes(minutes); err != nil {
			return nil, err
		}
	}

	reserved, err := uow.DriverRepository().ReserveFirstAvailable(ctx)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// Pool exhausted: the delivery stays pending.
	case err != nil:
		return nil, err
	default:
		if err = aggregate.Assign(reserved.ID()); err != nil {
			return nil, err
		}
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// estimate asks the routing provider for a delivery time estimate.
// Empty addresses are not worth a network round trip.
func (h CreateDeliveryCommandHandler) estimate(ctx context.Context, pickupAddress, deliveryAddress string) (int, error) {
	if pickupAddress == "" || deliveryAddress == "" {
		return 0, errs.NewValueIsRequiredError("pickupAddress and deliveryAddress")
	}

	return h.etaProvider.Estimate(ctx, pickupAddress, deliveryAddress)
}
