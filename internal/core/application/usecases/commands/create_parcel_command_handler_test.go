package commands_test

import (
	"testing"
	"time"

	"parcelrelay/internal/core/application/usecases/commands"
	"parcelrelay/internal/core/domain/model/account"
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/order"
	"parcelrelay/internal/core/domain/model/parcel"
	"parcelrelay/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	sender := newTestAccount(t)
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), sender.ID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		1.5, parcel.TypeFood, "sourdough starter",
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	accountRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_InitialOrderShape(t *testing.T) {
	ctx := t.Context()

	sender := newTestAccount(t)
	parcelID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	destinationID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		parcelID, orderID, sender.ID(), kernel.NewUUID(), destinationID, nil,
		1, parcel.TypeNormal, "",
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("AccountRepository").Return(accountRepo)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("OrderRepository").Return(orderRepo)
	accountRepo.On("Get", ctx, sender.ID()).Return(sender, nil)
	parcelRepo.On("Add", ctx, mock.MatchedBy(func(p *parcel.Parcel) bool {
		return p.ID().IsEqual(parcelID) &&
			p.Owner().IsEqual(sender.ID()) &&
			p.Status() == parcel.StatusAwaitingDelivery
	})).Return(nil)
	orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID().IsEqual(orderID) &&
			o.Parcel().IsEqual(parcelID) &&
			o.From().IsEqual(*sender.HomeAddress()) &&
			o.To() != nil && o.To().IsEqual(destinationID) &&
			o.Owner() == nil && o.StartedAt() == nil && o.FinishedAt() == nil
	})).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	parcelRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ExplicitPickupAddress(t *testing.T) {
	ctx := t.Context()

	sender := newTestAccount(t)
	pickupID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), sender.ID(), kernel.NewUUID(), kernel.NewUUID(), &pickupID,
		1, parcel.TypeNormal, "",
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("AccountRepository").Return(accountRepo)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("OrderRepository").Return(orderRepo)
	accountRepo.On("Get", ctx, sender.ID()).Return(sender, nil)
	parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil)
	orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.From().IsEqual(pickupID) && !o.From().IsEqual(*sender.HomeAddress())
	})).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_AddresslessSenderWithPickup(t *testing.T) {
	ctx := t.Context()

	sender, err := account.NewAccount(kernel.NewUUID(), "No Address", "noaddr@example.com", nil, time.Now())
	require.NoError(t, err)
	pickupID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), sender.ID(), kernel.NewUUID(), kernel.NewUUID(), &pickupID,
		1, parcel.TypeNormal, "",
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("AccountRepository").Return(accountRepo)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("OrderRepository").Return(orderRepo)
	accountRepo.On("Get", ctx, sender.ID()).Return(sender, nil)
	parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil)
	orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.From().IsEqual(pickupID)
	})).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_SenderNotFound(t *testing.T) {
	ctx := t.Context()

	senderID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), senderID, kernel.NewUUID(), kernel.NewUUID(), nil,
		1, parcel.TypeNormal, "",
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, senderID).Return(nil, errs.NewObjectNotFoundError("accountId", senderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateParcelCommandHandler_Handle_SenderWithoutAddress(t *testing.T) {
	ctx := t.Context()

	sender, err := account.NewAccount(kernel.NewUUID(), "No Address", "noaddr@example.com", nil, time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), sender.ID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		1, parcel.TypeNormal, "",
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSenderHasNoAddress)
	parcelRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
