package commands_test

import (
	"context"
	"testing"
	"time"

	"parcelrelay/internal/core/application/usecases/commands"
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/order"
	"parcelrelay/internal/core/domain/model/parcel"
	"parcelrelay/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockShipmentUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

// claimedShipment builds a parcel and order mid-delivery: claimed by the
// given courier, parcel in IN_DELIVERY.
func claimedShipment(t *testing.T, courierID kernel.UUID) (*parcel.Parcel, *order.Order) {
	t.Helper()
	testParcel, testOrder := newTestShipment(t, kernel.NewUUID())
	require.NoError(t, testOrder.Claim(courierID, time.Now()))
	require.NoError(t, testParcel.BeginDelivery())
	return testParcel, testOrder
}

func TestFinishOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	testParcel, testOrder := claimedShipment(t, courierID)

	cmd, err := commands.NewFinishOrderCommand(testOrder.ID(), courierID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, testParcel.ID()).Return(testParcel, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PhaseFinished, testOrder.Phase())
	assert.NotNil(t, testOrder.FinishedAt())
	assert.Equal(t, parcel.StatusDelivered, testParcel.Status())
	orderRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinishOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.FinishOrderCommand{} // not constructed properly

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewFinishOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrFinishOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestFinishOrderCommandHandler_Handle_NotClaimed(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	_, testOrder := newTestShipment(t, kernel.NewUUID())

	cmd, err := commands.NewFinishOrderCommand(testOrder.ID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderNotClaimed)
}

func TestFinishOrderCommandHandler_Handle_AlreadyFinished(t *testing.T) {
	ctx := t.Context()

	courierID := kernel.NewUUID()
	_, testOrder := claimedShipment(t, courierID)
	require.NoError(t, testOrder.Finish(courierID, time.Now()))
	firstFinishedAt := *testOrder.FinishedAt()

	cmd, err := commands.NewFinishOrderCommand(testOrder.ID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderAlreadyFinished)
	assert.Equal(t, firstFinishedAt, *testOrder.FinishedAt())
}

func TestFinishOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()

	ownerID := kernel.NewUUID()
	intruderID := kernel.NewUUID()
	_, testOrder := claimedShipment(t, ownerID)

	cmd, err := commands.NewFinishOrderCommand(testOrder.ID(), intruderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockShipmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewFinishOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotOrderOwner)
	assert.Nil(t, testOrder.FinishedAt())
	assert.Equal(t, order.PhaseClaimed, testOrder.Phase())
}
