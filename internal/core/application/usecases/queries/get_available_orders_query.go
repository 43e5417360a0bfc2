// Package queries contains read operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing the
// aggregates and the unit of work for cheap, side-effect-free reads.
package queries

import (
	"errors"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/parcel"
	"parcelrelay/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

// GetAvailableOrdersQuery retrieves all unclaimed orders on the marketplace,
// joined with the parcel details a courier needs to decide whether to take one.
//
// Example:
//
//	query := NewGetAvailableOrdersQuery()
//	handler := NewGetAvailableOrdersQueryHandler(db)
//
//	open, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list open orders: %w", err)
//	}
//	fmt.Printf("%d orders up for grabs\n", len(open))
type GetAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query to retrieve unclaimed orders.
// This is a parameterless query.
func NewGetAvailableOrdersQuery() GetAvailableOrdersQuery {
	return GetAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableOrdersQueryIsNotConstructed if validation fails.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// GetAvailableOrdersQueryResponse represents one claimable order with the
// parcel details relevant to a browsing courier.
type GetAvailableOrdersQueryResponse struct {
	OrderID       kernel.UUID
	ParcelID      kernel.UUID
	FromAddressID kernel.UUID
	ToAddressID   *kernel.UUID
	Weight        float64
	ParcelType    parcel.Type
	Description   string
}
