// Package addressrepo provides data transfer objects and mapping functions for address persistence.
package addressrepo

import (
	"parcelrelay/internal/core/domain/model/address"
	"parcelrelay/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting address aggregates.
// Postal fields and coordinates are both nullable at the column level; the
// domain guarantees at least one group carries information.
type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
	Country     string
	Latitude    *float64
	Longitude   *float64
}

// TableName specifies the database table name for address entities.
// Overrides GORM's default naming convention to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts an address domain aggregate to its database representation.
func fromDomain(aggregate *address.Address) AddressDTO {
	fields := aggregate.Fields()
	dto := AddressDTO{
		ID:          aggregate.ID().Bytes(),
		Street:      fields.Street,
		HouseNumber: fields.HouseNumber,
		PostalCode:  fields.PostalCode,
		City:        fields.City,
		Country:     fields.Country,
	}

	if geo := aggregate.Geo(); geo != nil {
		lat := geo.Latitude()
		lng := geo.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}

	return dto
}

// toDomain converts a database DTO to an address domain aggregate.
// Uses RestoreAddress, which tolerates rows degraded to coordinates only.
func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var geo *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		geo = &point
	}

	return address.RestoreAddress(id, address.PostalFields{
		Street:      dto.Street,
		HouseNumber: dto.HouseNumber,
		PostalCode:  dto.PostalCode,
		City:        dto.City,
		Country:     dto.Country,
	}, geo)
}
