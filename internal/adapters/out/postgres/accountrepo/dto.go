// Package accountrepo provides data transfer objects and mapping functions for account persistence.
package accountrepo

import (
	"time"

	"parcelrelay/internal/core/domain/model/account"
	"parcelrelay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
type AccountDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string     `gorm:"uniqueIndex"`
	AddressID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the database table name for account entities.
// Overrides GORM's default naming convention to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	dto := AccountDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		CreatedAt: aggregate.CreatedAt(),
	}

	if addressID := aggregate.HomeAddress(); addressID != nil {
		raw := addressID.Bytes()
		dto.AddressID = &raw
	}

	return dto
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var addressID *kernel.UUID
	if dto.AddressID != nil {
		aID, addrErr := kernel.UUIDFromBytes((*dto.AddressID)[:])
		if addrErr != nil {
			return nil, addrErr
		}
		addressID = &aID
	}

	return account.RestoreAccount(id, dto.Name, dto.Email, addressID, dto.CreatedAt)
}
