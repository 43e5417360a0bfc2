package queries

import (
	"context"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler retrieves unclaimed orders from the database.
// The same rows every courier sees when browsing the marketplace; whether a
// row is still claimable by the time a claim lands is decided by the
// conditional write in the claim command, not by this read.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unclaimed orders.
// Joins each order with its parcel for weight, type, and description.
// Results are sorted by order ID for consistent output.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAvailableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.parcel_id,
			o.from_address_id,
			o.to_address_id,
			p.weight,
			p.parcel_type,
			p.description
		FROM orders o
		JOIN parcels p ON p.id = o.parcel_id
		WHERE o.owner_id IS NULL
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAvailableOrdersQueryResponse
		var id, parcelID, fromAddressID uuid.UUID
		var toAddressID uuid.NullUUID
		var parcelType string

		err = rows.Scan(
			&id,
			&parcelID,
			&fromAddressID,
			&toAddressID,
			&orderResp.Weight,
			&parcelType,
			&orderResp.Description,
		)
		if err != nil {
			return nil, err
		}

		orderResp.OrderID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		orderResp.ParcelID, err = kernel.UUIDFromBytes(parcelID[:])
		if err != nil {
			return nil, err
		}
		orderResp.FromAddressID, err = kernel.UUIDFromBytes(fromAddressID[:])
		if err != nil {
			return nil, err
		}
		if toAddressID.Valid {
			to, toErr := kernel.UUIDFromBytes(toAddressID.UUID[:])
			if toErr != nil {
				return nil, toErr
			}
			orderResp.ToAddressID = &to
		}
		orderResp.ParcelType, err = parcel.TypeFromString(parcelType)
		if err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
