package commands

import (
	"context"

	"parcelrelay/internal/core/domain/services"
)

// ReconcileParcelStatusCommandHandler repairs parcels whose stored status has
// fallen behind their live order. Statuses only ever move forward: a parcel
// whose status is somehow ahead of its order is left alone and reported as an
// error by the domain rather than regressed.
type ReconcileParcelStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewReconcileParcelStatusCommandHandler creates a handler for reconciliation sweeps.
func NewReconcileParcelStatusCommandHandler(uowFactory ShipmentUoWFactory) ReconcileParcelStatusCommandHandler {
	return ReconcileParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Finds every order whose parcel status lags, fast-forwards each parcel to
// the status the order implies, and commits the whole sweep in one
// transaction. A sweep over a consistent store is a no-op.
func (h ReconcileParcelStatusCommandHandler) Handle(ctx context.Context, command ReconcileParcelStatusCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	orderRepo := uow.OrderRepository()

	laggingOrders, err := orderRepo.GetAllWithLaggingParcel(ctx)
	if err != nil {
		return err
	}

	for _, laggingOrder := range laggingOrders {
		laggingParcel, err := parcelRepo.Get(ctx, laggingOrder.Parcel())
		if err != nil {
			return err
		}

		if err := laggingParcel.SyncStatus(services.DeriveParcelStatus(laggingOrder)); err != nil {
			return err
		}

		if err := parcelRepo.Update(ctx, laggingParcel); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
