package queries

import (
	"context"
	"database/sql"

	"parcelrelay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyDeliveriesQueryHandler retrieves a courier's claimed orders from the
// database and partitions them by completion.
type GetMyDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDeliveriesQueryHandler creates a handler for courier delivery queries.
// Requires a GORM database connection for query execution.
func NewGetMyDeliveriesQueryHandler(db *gorm.DB) GetMyDeliveriesQueryHandler {
	return GetMyDeliveriesQueryHandler{db: db}
}

// Handle executes the query for all orders claimed by the courier.
// Orders without a finished-at timestamp land in Active, the rest in Past.
// Results are sorted by order ID for consistent output.
func (h GetMyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetMyDeliveriesQuery,
) (GetMyDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMyDeliveriesQueryResponse{}, err
	}

	response := GetMyDeliveriesQueryResponse{
		Active: make([]DeliveryResponse, 0),
		Past:   make([]DeliveryResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.parcel_id,
			p.description,
			p.weight,
			o.started_at,
			o.finished_at
		FROM orders o
		JOIN parcels p ON p.id = o.parcel_id
		WHERE o.owner_id = ?
		ORDER BY o.id
	`, query.CourierID().Bytes()).Rows()
	if err != nil {
		return GetMyDeliveriesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var delivery DeliveryResponse
		var id, parcelID uuid.UUID
		var finishedAt sql.NullTime

		err = rows.Scan(
			&id,
			&parcelID,
			&delivery.Description,
			&delivery.Weight,
			&delivery.StartedAt,
			&finishedAt,
		)
		if err != nil {
			return GetMyDeliveriesQueryResponse{}, err
		}

		delivery.OrderID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetMyDeliveriesQueryResponse{}, err
		}
		delivery.ParcelID, err = kernel.UUIDFromBytes(parcelID[:])
		if err != nil {
			return GetMyDeliveriesQueryResponse{}, err
		}

		if finishedAt.Valid {
			finished := finishedAt.Time
			delivery.FinishedAt = &finished
			response.Past = append(response.Past, delivery)
		} else {
			response.Active = append(response.Active, delivery)
		}
	}

	if err = rows.Err(); err != nil {
		return GetMyDeliveriesQueryResponse{}, err
	}

	return response, nil
}
