// Package address contains the Address aggregate: a physical location given
// by structured postal fields, raw coordinates, or both.
package address

import (
	"errors"
	"fmt"
	"strings"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress constructor")

// UnknownLocation is the display fallback for degraded or legacy rows that
// carry neither structured fields nor coordinates.
const UnknownLocation = "Unknown location"

// PostalFields holds the structured part of an address. All fields are
// optional individually; an address is displayable from them once street and
// city are present.
type PostalFields struct {
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
	Country     string
}

func (f PostalFields) isEmpty() bool {
	return f.Street == "" && f.HouseNumber == "" && f.PostalCode == "" && f.City == "" && f.Country == ""
}

// Address represents a physical location. It must resolve to a human-readable
// string via its structured fields or to coordinates via its geo point; both
// may be absent only in degraded legacy data, where display falls back to
// UnknownLocation.
type Address struct {
	id            kernel.UUID
	fields        PostalFields
	geo           *kernel.GeoPoint
	isConstructed bool
}

// NewAddress creates an Address from structured fields and/or coordinates.
// At least one of the two must be provided.
func NewAddress(id kernel.UUID, fields PostalFields, geo *kernel.GeoPoint) (*Address, error) {
	if fields.isEmpty() && geo == nil {
		return nil, errs.NewValueIsRequiredError("address fields or coordinates")
	}

	return RestoreAddress(id, fields, geo)
}

// RestoreAddress reconstructs an Address from persistence. Unlike NewAddress
// it tolerates rows with neither fields nor coordinates, because such
// degraded data exists and must still be loadable for display.
func RestoreAddress(id kernel.UUID, fields PostalFields, geo *kernel.GeoPoint) (*Address, error) {
	address := &Address{
		fields:        fields,
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	address.id = id

	if geo != nil {
		if err := geo.Validate(); err != nil {
			return nil, err
		}
		point := *geo
		address.geo = &point
	}

	return address, nil
}

// Validate ensures the Address was constructed through a constructor.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// Fields returns the structured postal fields.
func (a *Address) Fields() PostalFields {
	return a.fields
}

// Geo returns the raw coordinates, or nil if none were recorded.
func (a *Address) Geo() *kernel.GeoPoint {
	return a.geo
}

// DisplayString renders the address for presentation. Structured fields win
// over coordinates; with neither, it returns UnknownLocation.
//
// Examples:
//
//	"Lindenstrasse 12, 10969 Berlin"
//	"52.520000, 13.405000"
//	"Unknown location"
func (a *Address) DisplayString() string {
	if line := a.formatFields(); line != "" {
		return line
	}
	if a.geo != nil {
		return a.geo.String()
	}
	return UnknownLocation
}

func (a *Address) formatFields() string {
	street := strings.TrimSpace(fmt.Sprintf("%s %s", a.fields.Street, a.fields.HouseNumber))
	city := strings.TrimSpace(fmt.Sprintf("%s %s", a.fields.PostalCode, a.fields.City))

	switch {
	case street != "" && city != "":
		return fmt.Sprintf("%s, %s", street, city)
	case street != "":
		return street
	default:
		return city
	}
}
