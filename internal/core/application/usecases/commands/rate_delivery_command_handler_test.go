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

func TestRateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "a", "b")
	require.NoError(t, err)
	comment := "left at the door as asked"
	cmd, err := commands.NewRateDeliveryCommand(aggregate.ID(), 5, &comment)
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

	h := commands.NewRateDeliveryCommandHandler(factory)
	rated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, rated.Rating())
	assert.Equal(t, 5, *rated.Rating())
	assert.Equal(t, comment, *rated.Comment())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRateDeliveryCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewRateDeliveryCommand(deliveryID, 4, nil)
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

	h := commands.NewRateDeliveryCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
