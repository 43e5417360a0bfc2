// Package ports defines the persistence contracts between the domain core and
// the storage adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateUnclaimed persists a freshly claimed order with a guard on the
	// stored row still being unclaimed: the write applies only where the
	// order's owner column is NULL. If another claimer got there first, the
	// write affects no rows and a ConflictError (errs.ErrConflict) is
	// returned. This compare-and-swap is what makes the claim race safe:
	// given two concurrent claims on the same order, exactly one succeeds.
	UpdateUnclaimed(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnclaimed retrieves every order no courier has claimed yet,
	// in stable id order.
	GetAllUnclaimed(ctx context.Context) ([]*order.Order, error)

	// GetAllByOwner retrieves every order claimed by the given account,
	// active and finished alike, in stable id order.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// GetAllWithLaggingParcel retrieves orders whose derived parcel status is
	// ahead of the status stored on their parcel. Used by the reconciliation
	// path to repair divergence; returns an empty slice when the cross-entity
	// invariant holds everywhere.
	GetAllWithLaggingParcel(ctx context.Context) ([]*order.Order, error)
}
