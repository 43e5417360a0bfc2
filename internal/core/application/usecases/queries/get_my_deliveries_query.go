package queries

import (
	"errors"
	"time"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/pkg/guard"
)

var ErrGetMyDeliveriesQueryIsNotConstructed = errors.New(
	"GetMyDeliveriesQuery must be created via NewGetMyDeliveriesQuery constructor",
)

// GetMyDeliveriesQuery retrieves every order a courier has claimed, split
// into deliveries still in flight and deliveries already completed.
//
// Example:
//
//	query, err := NewGetMyDeliveriesQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d active, %d past\n", len(deliveries.Active), len(deliveries.Past))
type GetMyDeliveriesQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyDeliveriesQuery creates a query for a courier's claimed orders.
// Validates the courier ID. Returns an error if it is invalid.
func NewGetMyDeliveriesQuery(courierID kernel.UUID) (GetMyDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetMyDeliveriesQuery{}, err
	}

	return GetMyDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyDeliveriesQueryIsNotConstructed if validation fails.
func (q GetMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose deliveries are requested.
func (q GetMyDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// DeliveryResponse represents one claimed order from the courier's point of
// view. FinishedAt is nil while the delivery is still active.
type DeliveryResponse struct {
	OrderID     kernel.UUID
	ParcelID    kernel.UUID
	Description string
	Weight      float64
	StartedAt   time.Time
	FinishedAt  *time.Time
}

// GetMyDeliveriesQueryResponse partitions a courier's claimed orders into
// active and completed deliveries.
type GetMyDeliveriesQueryResponse struct {
	Active []DeliveryResponse
	Past   []DeliveryResponse
}
