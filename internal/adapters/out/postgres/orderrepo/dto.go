// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// OwnerID and StartedAt are set together when the order is claimed; the
// owner_id index serves both the marketplace listing (owner IS NULL) and the
// per-courier delivery views.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID  `gorm:"type:uuid;index"`
	FromAddressID uuid.UUID  `gorm:"type:uuid"`
	ToAddressID   *uuid.UUID `gorm:"type:uuid"`
	OwnerID       *uuid.UUID `gorm:"type:uuid;index"`
	StartedAt     *time.Time
	FinishedAt    *time.Time
	NextID        *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		ParcelID:      aggregate.Parcel().Bytes(),
		FromAddressID: aggregate.From().Bytes(),
		StartedAt:     aggregate.StartedAt(),
		FinishedAt:    aggregate.FinishedAt(),
	}

	if to := aggregate.To(); to != nil {
		raw := to.Bytes()
		dto.ToAddressID = &raw
	}
	if owner := aggregate.Owner(); owner != nil {
		raw := owner.Bytes()
		dto.OwnerID = &raw
	}
	if next := aggregate.Next(); next != nil {
		raw := next.Bytes()
		dto.NextID = &raw
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs claimed and finished orders via RestoreOrder, which rejects
// rows violating the owner/started-at pairing.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	fromAddressID, err := kernel.UUIDFromBytes(dto.FromAddressID[:])
	if err != nil {
		return nil, err
	}

	toAddressID, err := optionalUUID(dto.ToAddressID)
	if err != nil {
		return nil, err
	}

	ownerID, err := optionalUUID(dto.OwnerID)
	if err != nil {
		return nil, err
	}

	nextID, err := optionalUUID(dto.NextID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		parcelID,
		fromAddressID,
		toAddressID,
		ownerID,
		dto.StartedAt,
		dto.FinishedAt,
		nextID,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
