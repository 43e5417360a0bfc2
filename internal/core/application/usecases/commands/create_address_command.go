package commands

import (
	"errors"

	"parcelrelay/internal/core/domain/model/address"
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand represents a request to register a new address.
// Addresses are referenced by accounts as home locations and by parcels and
// orders as pickup and drop-off points. An address carries postal fields, a
// geographic point, or both; the domain constructor rejects fully empty ones.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	fields    address.PostalFields
	geo       *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateAddressCommand creates a command to register a new address.
// Either postal fields or a geographic point must carry information; the
// actual content check is deferred to the address aggregate constructor.
func NewCreateAddressCommand(
	addressID kernel.UUID,
	fields address.PostalFields,
	geo *kernel.GeoPoint,
) (CreateAddressCommand, error) {
	addressCommand := CreateAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addressCommand.setAddressID(addressID),
		addressCommand.setGeo(geo),
	); err != nil {
		return CreateAddressCommand{}, err
	}
	addressCommand.fields = fields

	return addressCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAddressCommandIsNotConstructed if validation fails.
func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

// AddressID returns the unique identifier for the new address.
func (c CreateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Fields returns the postal fields of the address.
func (c CreateAddressCommand) Fields() address.PostalFields {
	return c.fields
}

// Geo returns the optional geographic point, or nil.
func (c CreateAddressCommand) Geo() *kernel.GeoPoint {
	return c.geo
}

func (c *CreateAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateAddressCommand) setGeo(geo *kernel.GeoPoint) error {
	if geo == nil {
		return nil
	}
	if err := geo.Validate(); err != nil {
		return err
	}

	c.geo = geo
	return nil
}
