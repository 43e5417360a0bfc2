package queries

import (
	"context"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyParcelsQueryHandler retrieves a sender's parcels from the database,
// grouped by stored status.
type GetMyParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyParcelsQueryHandler creates a handler for sender parcel queries.
// Requires a GORM database connection for query execution.
func NewGetMyParcelsQueryHandler(db *gorm.DB) GetMyParcelsQueryHandler {
	return GetMyParcelsQueryHandler{db: db}
}

// Handle executes the query for all parcels posted by the sender.
// Parcels are grouped into awaiting, in-delivery, and delivered buckets by
// their stored status. Results are sorted by parcel ID for consistent output.
func (h GetMyParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetMyParcelsQuery,
) (GetMyParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMyParcelsQueryResponse{}, err
	}

	response := GetMyParcelsQueryResponse{
		AwaitingDelivery: make([]ParcelResponse, 0),
		InDelivery:       make([]ParcelResponse, 0),
		Delivered:        make([]ParcelResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			receiver_id,
			destination_address_id,
			weight,
			parcel_type,
			description,
			status
		FROM parcels
		WHERE sender_id = ?
		ORDER BY id
	`, query.SenderID().Bytes()).Rows()
	if err != nil {
		return GetMyParcelsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp ParcelResponse
		var id, receiverID, destinationID uuid.UUID
		var parcelType, status string

		err = rows.Scan(
			&id,
			&receiverID,
			&destinationID,
			&parcelResp.Weight,
			&parcelType,
			&parcelResp.Description,
			&status,
		)
		if err != nil {
			return GetMyParcelsQueryResponse{}, err
		}

		parcelResp.ParcelID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetMyParcelsQueryResponse{}, err
		}
		parcelResp.ReceiverID, err = kernel.UUIDFromBytes(receiverID[:])
		if err != nil {
			return GetMyParcelsQueryResponse{}, err
		}
		parcelResp.DestinationAddressID, err = kernel.UUIDFromBytes(destinationID[:])
		if err != nil {
			return GetMyParcelsQueryResponse{}, err
		}
		parcelResp.ParcelType, err = parcel.TypeFromString(parcelType)
		if err != nil {
			return GetMyParcelsQueryResponse{}, err
		}
		parcelResp.Status, err = parcel.StatusFromString(status)
		if err != nil {
			return GetMyParcelsQueryResponse{}, err
		}

		switch parcelResp.Status {
		case parcel.StatusInDelivery:
			response.InDelivery = append(response.InDelivery, parcelResp)
		case parcel.StatusDelivered:
			response.Delivered = append(response.Delivered, parcelResp)
		default:
			response.AwaitingDelivery = append(response.AwaitingDelivery, parcelResp)
		}
	}

	if err = rows.Err(); err != nil {
		return GetMyParcelsQueryResponse{}, err
	}

	return response, nil
}
