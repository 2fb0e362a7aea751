package commands_test

import (
	"testing"

	"delivery-tracking/internal/core/application/usecases/commands"
	"delivery-tracking/internal/core/domain/model/delivery"
	"delivery-tracking/internal/core/domain/model/kernel"
	"delivery-tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDeliveryLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "a", "b")
	require.NoError(t, err)
	location, err := kernel.NewGeoPoint(48.8566, 2.3522)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateDeliveryLocationCommand(aggregate.ID(), location)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryLocationCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, updated.CurrentLocation())
	equal, err := location.IsEqual(*updated.CurrentLocation())
	require.NoError(t, err)
	assert.True(t, equal)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryLocationCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	location, err := kernel.NewGeoPoint(48.8566, 2.3522)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateDeliveryLocationCommand(deliveryID, location)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryLocationCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateDeliveryLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateDeliveryLocationCommand{} // not constructed properly
	factory := new(MockDeliveryUoWFactory)
	h := commands.NewUpdateDeliveryLocationCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
