package commands

import (
	"errors"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/parcel"
	"parcelrelay/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrWeightIsInvalid = errors.New("weight must be greater than 0")
)

// CreateParcelCommand represents a request to post a new parcel on the
// marketplace. Posting a parcel also opens its first relay order, so the
// command carries identifiers for both.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(
//	    kernel.NewUUID(), kernel.NewUUID(),
//	    senderID, receiverID, destinationID, nil,
//	    2.5, parcel.TypeFragile, "vinyl records",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID             kernel.UUID
	orderID              kernel.UUID
	senderID             kernel.UUID
	receiverID           kernel.UUID
	destinationAddressID kernel.UUID
	fromAddressID        *kernel.UUID
	weight               float64
	parcelType           parcel.Type
	description          string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to post a new parcel together with
// its initial relay order. The optional fromAddressID selects the pickup
// point of the first leg; when nil the sender's home address is used.
// Validates every identifier, requires a positive weight, and requires a
// known parcel type. Returns an error if any validation fails.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	orderID kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	destinationAddressID kernel.UUID,
	fromAddressID *kernel.UUID,
	weight float64,
	parcelType parcel.Type,
	description string,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setOrderID(orderID),
		parcelCommand.setSenderID(senderID),
		parcelCommand.setReceiverID(receiverID),
		parcelCommand.setDestinationAddressID(destinationAddressID),
		parcelCommand.setFromAddressID(fromAddressID),
		parcelCommand.setWeight(weight),
		parcelCommand.setParcelType(parcelType),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// OrderID returns the unique identifier for the parcel's initial order.
func (c CreateParcelCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SenderID returns the account posting the parcel.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverID returns the account the parcel is addressed to.
func (c CreateParcelCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

// DestinationAddressID returns the address the parcel must reach.
func (c CreateParcelCommand) DestinationAddressID() kernel.UUID {
	return c.destinationAddressID
}

// FromAddressID returns the requested pickup address for the first leg,
// or nil when the sender's home address should be used.
func (c CreateParcelCommand) FromAddressID() *kernel.UUID {
	return c.fromAddressID
}

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// ParcelType returns the parcel's handling category.
func (c CreateParcelCommand) ParcelType() parcel.Type {
	return c.parcelType
}

// Description returns the free-text parcel description, possibly empty.
func (c CreateParcelCommand) Description() string {
	return c.description
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return err
	}

	c.receiverID = receiverID
	return nil
}

func (c *CreateParcelCommand) setDestinationAddressID(destinationAddressID kernel.UUID) error {
	if err := destinationAddressID.Validate(); err != nil {
		return err
	}

	c.destinationAddressID = destinationAddressID
	return nil
}

func (c *CreateParcelCommand) setFromAddressID(fromAddressID *kernel.UUID) error {
	if fromAddressID != nil {
		if err := fromAddressID.Validate(); err != nil {
			return err
		}
	}

	c.fromAddressID = fromAddressID
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setParcelType(parcelType parcel.Type) error {
	if err := parcelType.Validate(); err != nil {
		return err
	}

	c.parcelType = parcelType
	return nil
}
