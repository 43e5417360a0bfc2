// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
package parcelrepo

import (
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Status and type are stored as their wire strings rather than ints so rows
// stay readable and inserts from outside the application stay unambiguous.
type ParcelDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID             uuid.UUID `gorm:"type:uuid;index"`
	ReceiverID           uuid.UUID `gorm:"type:uuid;index"`
	OwnerID              uuid.UUID `gorm:"type:uuid"`
	DestinationAddressID uuid.UUID `gorm:"type:uuid"`
	Weight               float64
	ParcelType           string `gorm:"type:varchar(16)"`
	Description          string
	Status               string `gorm:"type:varchar(32);index"`
	Latitude             *float64
	Longitude            *float64
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:                   aggregate.ID().Bytes(),
		SenderID:             aggregate.Sender().Bytes(),
		ReceiverID:           aggregate.Receiver().Bytes(),
		OwnerID:              aggregate.Owner().Bytes(),
		DestinationAddressID: aggregate.Destination().Bytes(),
		Weight:               aggregate.Weight(),
		ParcelType:           aggregate.ParcelType().String(),
		Description:          aggregate.Description(),
		Status:               aggregate.Status().String(),
	}

	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lng := location.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}

	return dto
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	destinationID, err := kernel.UUIDFromBytes(dto.DestinationAddressID[:])
	if err != nil {
		return nil, err
	}

	parcelType, err := parcel.TypeFromString(dto.ParcelType)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return parcel.RestoreParcel(
		id,
		senderID,
		receiverID,
		ownerID,
		destinationID,
		dto.Weight,
		parcelType,
		dto.Description,
		status,
		location,
	)
}
