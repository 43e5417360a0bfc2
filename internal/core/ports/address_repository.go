package ports

import (
	"context"

	"parcelrelay/internal/core/domain/model/address"
	"parcelrelay/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for address aggregates.
type AddressRepository interface {
	// Add persists a new address aggregate to storage.
	Add(ctx context.Context, aggregate *address.Address) error

	// Update persists changes to an existing address aggregate.
	Update(ctx context.Context, aggregate *address.Address) error

	// Get retrieves an address aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no such address exists.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)
}
