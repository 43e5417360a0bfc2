package commands

import (
	"context"
	"errors"
	"time"

	"parcelrelay/internal/core/domain/model/order"
	"parcelrelay/internal/core/domain/services"
	"parcelrelay/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyClaimed is returned when the order already has an owner,
	// whether it was claimed before the request or lost in a concurrent race.
	ErrOrderAlreadyClaimed = errors.New("order is already claimed")

	// ErrSenderSelfClaimNotAllowed is returned when the marketplace policy
	// bars senders from couriering their own parcels and the claimer is the
	// parcel's sender.
	ErrSenderSelfClaimNotAllowed = errors.New("sender may not claim the order of their own parcel")
)

// ClaimOrderCommandHandler processes courier claims on open orders.
//
// Mutual exclusion between concurrent claimers is enforced at the storage
// layer: the claim is written through UpdateUnclaimed, which only applies
// where the stored row is still unclaimed. The loser of a race gets
// ErrOrderAlreadyClaimed, never a partial update.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory, services.NewClaimPolicy(true))
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderAlreadyClaimed):
//	    // 409 to the caller
//	case errors.Is(err, ErrSenderSelfClaimNotAllowed):
//	    // 403 to the caller
//	case err != nil:
//	    // unexpected
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     services.ClaimPolicy
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
// The claim policy decides whether senders may claim their own parcels.
func NewClaimOrderCommandHandler(uowFactory UoWFactory, policy services.ClaimPolicy) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the claim command.
// Loads the order, its parcel, and the claiming account, checks the claim
// policy, then applies the claim and moves the parcel into delivery within
// one transaction. The order write is conditional on the row still being
// unclaimed, so a lost race rolls back the parcel update too.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
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

	claimedOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	claimedParcel, err := uow.ParcelRepository().Get(ctx, claimedOrder.Parcel())
	if err != nil {
		return err
	}

	if _, err := uow.AccountRepository().Get(ctx, command.CourierID()); err != nil {
		return err
	}

	if claimedOrder.Phase() != order.PhaseUnclaimed {
		return ErrOrderAlreadyClaimed
	}

	if !h.policy.CanClaim(claimedOrder, claimedParcel, command.CourierID()) {
		return ErrSenderSelfClaimNotAllowed
	}

	if err := claimedOrder.Claim(command.CourierID(), time.Now()); err != nil {
		return err
	}

	if err := claimedParcel.BeginDelivery(); err != nil {
		return err
	}

	if err := uow.OrderRepository().UpdateUnclaimed(ctx, claimedOrder); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return ErrOrderAlreadyClaimed
		}
		return err
	}

	if err := uow.ParcelRepository().Update(ctx, claimedParcel); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
