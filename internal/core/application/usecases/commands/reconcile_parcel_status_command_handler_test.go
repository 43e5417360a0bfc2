package commands_test

import (
	"testing"
	"time"

	"parcelrelay/internal/core/application/usecases/commands"
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/order"
	"parcelrelay/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileParcelStatusCommandHandler_Handle_NothingToRepair(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileParcelStatusCommand()

	orderRepo := new(MockOrderRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockShipmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllWithLaggingParcel", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileParcelStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReconcileParcelStatusCommandHandler_Handle_FastForwardsLaggingParcel(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReconcileParcelStatusCommand()

	// Order is claimed but its parcel still reads AWAITING_DELIVERY, as if
	// the claim row was written outside the application.
	laggingParcel, laggingOrder := newTestShipment(t, kernel.NewUUID())
	require.NoError(t, laggingOrder.Claim(kernel.NewUUID(), time.Now()))
	require.Equal(t, parcel.StatusAwaitingDelivery, laggingParcel.Status())

	orderRepo := new(MockOrderRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockShipmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllWithLaggingParcel", ctx).Return([]*order.Order{laggingOrder}, nil).Once(),
		parcelRepo.On("Get", ctx, laggingParcel.ID()).Return(laggingParcel, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileParcelStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.StatusInDelivery, laggingParcel.Status())
	orderRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileParcelStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReconcileParcelStatusCommand{} // not constructed properly

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewReconcileParcelStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReconcileParcelStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
