package order

import (
	"errors"
	"fmt"
	"time"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNotOwner is returned by Finish when the acting account does not own
	// the order.
	ErrNotOwner = errors.New("only the order's owner may finish it")
)

// Order represents one directed delivery leg of a parcel: move parcel X from
// address A to address B. It is the aggregate root of the claim state machine.
//
// Order maintains these invariants at all times:
//   - startedAt is non-nil if and only if ownerID is non-nil
//   - finishedAt non-nil implies startedAt non-nil
//   - finishedAt is set at most once; a finished order is terminal
//   - an order is claimed by at most one account, exactly once
//
// The nextID field reserves room for multi-hop relay chains. It is persisted
// and restored but never populated or traversed; no chaining logic exists.
//
// The struct uses private fields so the invariants can only be affected by
// Claim and Finish.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// parcelID references the parcel this leg moves
	parcelID kernel.UUID

	// fromAddressID is the pickup address of the leg
	fromAddressID kernel.UUID

	// toAddressID is the drop-off address of the leg. Nullable in the legacy
	// schema; always set for orders created through NewOrder.
	toAddressID *kernel.UUID

	// ownerID is the claiming courier's account (nil while unclaimed)
	ownerID *kernel.UUID

	// startedAt is when the order was claimed (nil while unclaimed)
	startedAt *time.Time

	// finishedAt is when the leg was completed (nil until finished)
	finishedAt *time.Time

	// nextID is the successor leg in a relay chain (reserved, never populated)
	nextID *kernel.UUID

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an unclaimed Order for a parcel leg from one address to
// another. Exactly one such order is created alongside every new parcel, from
// the sender's address to the parcel's destination.
//
// Parameters:
//   - id: unique identifier for the order
//   - parcelID: the parcel this leg moves (required)
//   - fromAddressID: pickup address (required)
//   - toAddressID: drop-off address (required for new orders)
//
// The order starts with no owner, no started-at, and no finished-at: the
// Unclaimed phase. Returns a validation error if any reference is invalid.
func NewOrder(
	id kernel.UUID,
	parcelID kernel.UUID,
	fromAddressID kernel.UUID,
	toAddressID kernel.UUID,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setParcelID(parcelID),
		order.setFromAddressID(fromAddressID),
	); err != nil {
		return nil, err
	}

	if err := toAddressID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("toAddress", err)
	}
	order.toAddressID = &toAddressID

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including claimed and
// finished orders. It enforces the cross-field invariants on the stored data:
// rows where started-at and owner disagree, or where finished-at is set
// without started-at, are rejected as corrupt rather than silently accepted.
func RestoreOrder(
	id kernel.UUID,
	parcelID kernel.UUID,
	fromAddressID kernel.UUID,
	toAddressID *kernel.UUID,
	ownerID *kernel.UUID,
	startedAt *time.Time,
	finishedAt *time.Time,
	nextID *kernel.UUID,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setParcelID(parcelID),
		order.setFromAddressID(fromAddressID),
	); err != nil {
		return nil, err
	}

	if toAddressID != nil {
		if err := toAddressID.Validate(); err != nil {
			return nil, err
		}
		to := *toAddressID
		order.toAddressID = &to
	}

	if (ownerID == nil) != (startedAt == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order is invalid",
			fmt.Errorf("started-at must be set exactly when an owner is set"))
	}

	if finishedAt != nil && startedAt == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order is invalid",
			fmt.Errorf("finished-at requires started-at"))
	}

	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return nil, err
		}
		owner := *ownerID
		order.ownerID = &owner
		started := *startedAt
		order.startedAt = &started
	}

	if finishedAt != nil {
		finished := *finishedAt
		order.finishedAt = &finished
	}

	if nextID != nil {
		if err := nextID.Validate(); err != nil {
			return nil, err
		}
		next := *nextID
		order.nextID = &next
	}

	return order, nil
}

// Validate ensures the Order was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Parcel returns the parcel this leg moves.
func (o *Order) Parcel() kernel.UUID {
	return o.parcelID
}

// From returns the pickup address of the leg.
func (o *Order) From() kernel.UUID {
	return o.fromAddressID
}

// To returns the drop-off address of the leg.
// Returns nil only for legacy rows; orders created through NewOrder always
// carry one.
func (o *Order) To() *kernel.UUID {
	return o.toAddressID
}

// Owner returns the claiming courier's account ID.
// Returns nil while the order is unclaimed.
func (o *Order) Owner() *kernel.UUID {
	return o.ownerID
}

// StartedAt returns when the order was claimed, or nil while unclaimed.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// FinishedAt returns when the leg was completed, or nil until finished.
func (o *Order) FinishedAt() *time.Time {
	return o.finishedAt
}

// Next returns the successor leg in a relay chain.
// Always nil in practice; the field is reserved.
func (o *Order) Next() *kernel.UUID {
	return o.nextID
}

// Phase classifies the order from its fields:
//   - Unclaimed if no owner is set
//   - Finished if finished-at is set
//   - Claimed otherwise
//
// Phase is pure and never errors; it is the single source of truth the query
// views and the parcel status derivation rely on.
func (o *Order) Phase() Phase {
	switch {
	case o.ownerID == nil:
		return PhaseUnclaimed
	case o.finishedAt != nil:
		return PhaseFinished
	default:
		return PhaseClaimed
	}
}

// Claim assigns the order to a courier and records the claim time.
//
// Business rules enforced:
//   - The courier ID must be valid
//   - The order must be in the Unclaimed phase; re-claiming is never allowed
//
// On success the order's owner and started-at are set together, preserving the
// started-at ⟺ owner invariant. Note that Claim only guards the in-memory
// state: winning a concurrent claim race is the persistence layer's job, which
// must apply the claim with a compare-and-swap on "owner is still null".
func (o *Order) Claim(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if _, err := o.Phase().Claim(); err != nil {
		return err
	}

	started := now.UTC()
	o.ownerID = &courierID
	o.startedAt = &started
	return nil
}

// Finish marks the leg complete and records the completion time.
//
// Business rules enforced:
//   - The order must be in the Claimed phase (claimed and not yet finished)
//   - Only the current owner may finish; anyone else gets ErrNotOwner
//
// Finished-at is set exactly once; a second call fails the phase check.
func (o *Order) Finish(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if _, err := o.Phase().Finish(); err != nil {
		return err
	}

	if !o.ownerID.IsEqual(courierID) {
		return ErrNotOwner
	}

	finished := now.UTC()
	o.finishedAt = &finished
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcel", err)
	}
	o.parcelID = parcelID
	return nil
}

func (o *Order) setFromAddressID(fromAddressID kernel.UUID) error {
	if err := fromAddressID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("fromAddress", err)
	}
	o.fromAddressID = fromAddressID
	return nil
}
