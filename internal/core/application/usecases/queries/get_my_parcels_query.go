package queries

import (
	"errors"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/parcel"
	"parcelrelay/internal/pkg/guard"
)

var ErrGetMyParcelsQueryIsNotConstructed = errors.New(
	"GetMyParcelsQuery must be created via NewGetMyParcelsQuery constructor",
)

// GetMyParcelsQuery retrieves every parcel an account has posted, grouped by
// delivery progress so a sender can see at a glance what is still waiting,
// what is on the road, and what has arrived.
type GetMyParcelsQuery struct { //nolint:recvcheck //using for validation
	senderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyParcelsQuery creates a query for a sender's parcels.
// Validates the sender ID. Returns an error if it is invalid.
func NewGetMyParcelsQuery(senderID kernel.UUID) (GetMyParcelsQuery, error) {
	if err := senderID.Validate(); err != nil {
		return GetMyParcelsQuery{}, err
	}

	return GetMyParcelsQuery{
		senderID: senderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyParcelsQueryIsNotConstructed if validation fails.
func (q GetMyParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyParcelsQueryIsNotConstructed)
}

// SenderID returns the account whose parcels are requested.
func (q GetMyParcelsQuery) SenderID() kernel.UUID {
	return q.senderID
}

// ParcelResponse represents one posted parcel and its delivery progress.
type ParcelResponse struct {
	ParcelID             kernel.UUID
	ReceiverID           kernel.UUID
	DestinationAddressID kernel.UUID
	Weight               float64
	ParcelType           parcel.Type
	Description          string
	Status               parcel.Status
}

// GetMyParcelsQueryResponse groups a sender's parcels by delivery progress.
type GetMyParcelsQueryResponse struct {
	AwaitingDelivery []ParcelResponse
	InDelivery       []ParcelResponse
	Delivered        []ParcelResponse
}
