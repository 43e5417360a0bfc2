package ports

import (
	"context"

	"parcelrelay/internal/core/domain/model/account"
	"parcelrelay/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)
}
