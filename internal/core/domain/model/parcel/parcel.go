package parcel

import (
	"errors"
	"fmt"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel. This ensures all parcels are
	// properly validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
)

// Parcel represents a shippable item in the system. It is an aggregate root
// managing the parcel's delivery state from submission through delivery.
//
// Parcel maintains these invariants:
//   - Sender, receiver, and destination references must be valid
//   - Weight must be positive (greater than 0)
//   - Status advances monotonically: AwaitingDelivery -> InDelivery -> Delivered
//   - Custody (owner) starts with the sender
//   - Can only be created through NewParcel or RestoreParcel
//
// The struct uses private fields so state can only change through validated
// methods.
type Parcel struct {
	// id is the unique identifier for the parcel
	id kernel.UUID

	// senderID references the account that submitted the parcel
	senderID kernel.UUID

	// receiverID references the account the parcel is addressed to
	receiverID kernel.UUID

	// ownerID references the account currently responsible for the parcel.
	// Custody starts with the sender; handoff on completion is reserved for
	// multi-hop relays and not performed yet.
	ownerID kernel.UUID

	// destinationAddressID references the address the parcel must reach
	destinationAddressID kernel.UUID

	// weight is the parcel weight in kilograms (must be positive)
	weight float64

	// parcelType is the handling category of the contents
	parcelType Type

	// description is free text supplied by the sender
	description string

	// status is the current delivery state
	status Status

	// location is the last reported position of the parcel, if any
	location *kernel.GeoPoint

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a Parcel in AwaitingDelivery status with custody assigned
// to the sender. This is the only way to create a brand-new parcel; all inputs
// are validated and the status is seeded by the lifecycle rules, never by the
// caller.
//
// Parameters:
//   - id: unique identifier for the parcel
//   - senderID: account submitting the parcel
//   - receiverID: account the parcel is addressed to (required)
//   - destinationAddressID: address the parcel must reach
//   - weight: weight in kilograms, must be greater than 0
//   - parcelType: handling category (TypeNormal, TypeFragile, TypeFood)
//   - description: free-text description, may be empty
//
// Returns the constructed parcel, or a validation error if any input is invalid.
func NewParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	destinationAddressID kernel.UUID,
	weight float64,
	parcelType Type,
	description string,
) (*Parcel, error) {
	parcel := &Parcel{
		status:        StatusAwaitingDelivery,
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setSenderID(senderID),
		parcel.setReceiverID(receiverID),
		parcel.setDestinationAddressID(destinationAddressID),
		parcel.setWeight(weight),
		parcel.setParcelType(parcelType),
	); err != nil {
		return nil, err
	}

	// Custody begins with the sender.
	parcel.ownerID = senderID

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel from persistence. Unlike NewParcel it
// accepts an arbitrary stored status, custody owner, and optional location,
// but still validates every field so corrupt rows cannot produce an invalid
// aggregate.
func RestoreParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	ownerID kernel.UUID,
	destinationAddressID kernel.UUID,
	weight float64,
	parcelType Type,
	description string,
	status Status,
	location *kernel.GeoPoint,
) (*Parcel, error) {
	parcel := &Parcel{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setSenderID(senderID),
		parcel.setReceiverID(receiverID),
		parcel.setDestinationAddressID(destinationAddressID),
		parcel.setWeight(weight),
		parcel.setParcelType(parcelType),
		status.Validate(),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		loc := *location
		parcel.location = &loc
	}

	parcel.ownerID = ownerID
	parcel.status = status

	return parcel, nil
}

// Validate ensures the Parcel was constructed through NewParcel or
// RestoreParcel rather than a struct literal.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Sender returns the account that submitted the parcel.
func (p *Parcel) Sender() kernel.UUID {
	return p.senderID
}

// Receiver returns the account the parcel is addressed to.
func (p *Parcel) Receiver() kernel.UUID {
	return p.receiverID
}

// Owner returns the account currently holding custody of the parcel.
func (p *Parcel) Owner() kernel.UUID {
	return p.ownerID
}

// Destination returns the address the parcel must reach.
func (p *Parcel) Destination() kernel.UUID {
	return p.destinationAddressID
}

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// ParcelType returns the handling category of the contents.
func (p *Parcel) ParcelType() Type {
	return p.parcelType
}

// Description returns the sender-supplied free-text description.
func (p *Parcel) Description() string {
	return p.description
}

// Status returns the current delivery state.
func (p *Parcel) Status() Status {
	return p.status
}

// Location returns the last reported position of the parcel.
// Returns nil if no position has been reported.
func (p *Parcel) Location() *kernel.GeoPoint {
	return p.location
}

// BeginDelivery advances the parcel to InDelivery. Called when a courier
// claims the parcel's order; any other starting status is rejected so the
// status can never regress or skip backwards.
func (p *Parcel) BeginDelivery() error {
	newStatus, err := p.status.BeginDelivery()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// CompleteDelivery advances the parcel to Delivered. Called when the owning
// courier finishes the parcel's order. Delivered is final.
func (p *Parcel) CompleteDelivery() error {
	newStatus, err := p.status.CompleteDelivery()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// SyncStatus fast-forwards the parcel status to target. It is the repair path
// used by reconciliation when the stored status lags behind the state derived
// from the parcel's live order. Moving backwards is rejected; syncing to the
// current status is a no-op.
func (p *Parcel) SyncStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == p.status {
		return nil
	}
	if !p.status.CanAdvanceTo(target) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move parcel status backwards from %s to %s", p.status, target),
		)
	}

	p.status = target
	return nil
}

// UpdateLocation records a newly reported position for the parcel.
func (p *Parcel) UpdateLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	p.location = &point
	return nil
}

// setID validates and sets the parcel's unique identifier.
// This is a private method used only during construction.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setReceiverID(receiverID kernel.UUID) error {
	if err := receiverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiver", err)
	}
	p.receiverID = receiverID
	return nil
}

func (p *Parcel) setDestinationAddressID(destinationAddressID kernel.UUID) error {
	if err := destinationAddressID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	p.destinationAddressID = destinationAddressID
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid", fmt.Errorf("%v is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setParcelType(parcelType Type) error {
	if err := parcelType.Validate(); err != nil {
		return err
	}
	p.parcelType = parcelType
	return nil
}
