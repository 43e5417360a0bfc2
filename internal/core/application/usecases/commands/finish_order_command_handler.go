package commands

import (
	"context"
	"errors"
	"time"

	"parcelrelay/internal/core/domain/model/order"
)

var (
	// ErrOrderNotClaimed is returned when finishing an order no courier has
	// claimed yet.
	ErrOrderNotClaimed = errors.New("order has not been claimed")

	// ErrOrderAlreadyFinished is returned when the order was already finished;
	// completion happens at most once.
	ErrOrderAlreadyFinished = errors.New("order is already finished")

	// ErrNotOrderOwner is returned when the finishing account is not the
	// order's current owner.
	ErrNotOrderOwner = errors.New("only the order's owner may finish it")
)

// FinishOrderCommandHandler processes delivery completion.
// Marks the order finished and moves the parcel to delivered in the same
// transaction, so the parcel's stored status never diverges from what the
// order's state implies.
type FinishOrderCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewFinishOrderCommandHandler creates a handler for completion operations.
func NewFinishOrderCommandHandler(uowFactory ShipmentUoWFactory) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish command.
// Classifies invalid states before touching anything: an unclaimed order
// yields ErrOrderNotClaimed, a finished one ErrOrderAlreadyFinished, a
// non-owner ErrNotOrderOwner. On success both aggregate updates are committed
// atomically.
func (h FinishOrderCommandHandler) Handle(ctx context.Context, command FinishOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	finishedOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	switch finishedOrder.Phase() {
	case order.PhaseUnclaimed:
		return ErrOrderNotClaimed
	case order.PhaseFinished:
		return ErrOrderAlreadyFinished
	}

	if err := finishedOrder.Finish(command.CourierID(), time.Now()); err != nil {
		if errors.Is(err, order.ErrNotOwner) {
			return ErrNotOrderOwner
		}
		return err
	}

	deliveredParcel, err := uow.ParcelRepository().Get(ctx, finishedOrder.Parcel())
	if err != nil {
		return err
	}

	if err := deliveredParcel.CompleteDelivery(); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, finishedOrder); err != nil {
		return err
	}

	if err := uow.ParcelRepository().Update(ctx, deliveredParcel); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
