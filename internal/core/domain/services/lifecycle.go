package services

import (
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/order"
	"parcelrelay/internal/core/domain/model/parcel"
)

// ClaimPolicy decides whether an account may claim an order. The state
// machine part (only unclaimed orders are claimable) is fixed; whether a
// sender may claim the order of their own parcel is a marketplace policy
// choice, so it is configured rather than hard-coded.
//
// Example:
//
//	policy := services.NewClaimPolicy(true) // open marketplace
//	if !policy.CanClaim(ord, par, courierID) {
//	    // reject the claim
//	}
type ClaimPolicy struct {
	allowSenderSelfClaim bool
}

// NewClaimPolicy creates a ClaimPolicy. With allowSenderSelfClaim true, any
// account including the parcel's sender may claim; with false, senders are
// barred from couriering their own parcels.
func NewClaimPolicy(allowSenderSelfClaim bool) ClaimPolicy {
	return ClaimPolicy{allowSenderSelfClaim: allowSenderSelfClaim}
}

// AllowsSenderSelfClaim reports the configured self-claim behavior.
func (p ClaimPolicy) AllowsSenderSelfClaim() bool {
	return p.allowSenderSelfClaim
}

// CanClaim reports whether actingAccount may claim ord for par.
// True iff the order is unclaimed and the self-claim policy permits the actor.
// Pure and side-effect free; never errors.
func (p ClaimPolicy) CanClaim(ord *order.Order, par *parcel.Parcel, actingAccount kernel.UUID) bool {
	if ord.Phase() != order.PhaseUnclaimed {
		return false
	}
	if !p.allowSenderSelfClaim && par.Sender().IsEqual(actingAccount) {
		return false
	}
	return true
}

// CanFinish reports whether actingAccount may finish ord.
// True iff the order is claimed and actingAccount is its current owner.
func CanFinish(ord *order.Order, actingAccount kernel.UUID) bool {
	if ord.Phase() != order.PhaseClaimed {
		return false
	}
	return ord.Owner().IsEqual(actingAccount)
}

// DeriveParcelStatus maps an order's phase to the parcel status it implies:
//
//	Unclaimed -> AwaitingDelivery
//	Claimed   -> InDelivery
//	Finished  -> Delivered
//
// The cross-entity invariant of the system is that a parcel's stored status
// equals DeriveParcelStatus of its live order; the command handlers maintain
// it transactionally and the reconciliation job repairs any divergence.
func DeriveParcelStatus(ord *order.Order) parcel.Status {
	switch ord.Phase() {
	case order.PhaseClaimed:
		return parcel.StatusInDelivery
	case order.PhaseFinished:
		return parcel.StatusDelivered
	default:
		return parcel.StatusAwaitingDelivery
	}
}
