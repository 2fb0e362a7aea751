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

func newAssignedDelivery(t *testing.T, driverID kernel.UUID) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "12 Rue de la Paix", "5 Avenue Anatole")
	require.NoError(t, err)
	require.NoError(t, d.Assign(driverID))
	return d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_PickedUp(t *testing.T) {
	ctx := t.Context()
	aggregate := newAssignedDelivery(t, kernel.NewUUID())
	cmd, err := commands.NewUpdateDeliveryStatusCommand(aggregate.ID(), delivery.PickedUp)
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

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, delivery.PickedUp, updated.Status())
	assert.NotNil(t, updated.PickupTime())
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredReleasesDriver(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := newAssignedDelivery(t, driverID)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(aggregate.ID(), delivery.Delivered)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Release", mock.Anything, driverID).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, delivery.Delivered, updated.Status())
	assert.NotNil(t, updated.DeliveryTime())
	driverRepo.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredWithDanglingDriver(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := newAssignedDelivery(t, driverID)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(aggregate.ID(), delivery.Delivered)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Release", mock.Anything, driverID).
			Return(errs.NewObjectNotFoundError("driver", driverID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAssignedDriverNotFound)

	// The aggregate itself was not mutated.
	assert.Equal(t, delivery.Assigned, aggregate.Status())
	assert.Nil(t, aggregate.DeliveryTime())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredWithoutDriverFails(t *testing.T) {
	ctx := t.Context()
	aggregate, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "a", "b")
	require.NoError(t, err)
	cmd, err := commands.NewUpdateDeliveryStatusCommand(aggregate.ID(), delivery.Delivered)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAssignedDriverNotFound)

	// The aggregate itself was not mutated.
	assert.Equal(t, delivery.Pending, aggregate.Status())
	assert.Nil(t, aggregate.DeliveryTime())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "DriverRepository")
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, delivery.PickedUp)
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

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
