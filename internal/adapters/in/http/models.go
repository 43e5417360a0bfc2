package http

import "time"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterAccountRequest is the body for POST /api/v1/accounts. The display
// name is optional; only the email is required.
type RegisterAccountRequest struct {
	Name      string  `json:"name,omitempty"`
	Email     string  `json:"email" validate:"required,email"`
	AddressID *string `json:"addressId,omitempty" validate:"omitempty,uuid"`
}

// RegisterAccountResponse returns the identifier of the new account.
type RegisterAccountResponse struct {
	ID string `json:"id"`
}

// CreateAddressRequest is the body for POST /api/v1/addresses.
// Postal fields and coordinates are both optional, but at least one group
// must carry information.
type CreateAddressRequest struct {
	Street      string   `json:"street,omitempty"`
	HouseNumber string   `json:"houseNumber,omitempty"`
	PostalCode  string   `json:"postalCode,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Latitude    *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
}

// CreateAddressResponse returns the identifier of the new address.
type CreateAddressResponse struct {
	ID string `json:"id"`
}

// CreateParcelRequest is the body for POST /api/v1/parcels. FromAddressID
// selects the pickup point of the first leg; when omitted the sender's home
// address is used.
type CreateParcelRequest struct {
	SenderID             string  `json:"senderId" validate:"required,uuid"`
	ReceiverID           string  `json:"receiverId" validate:"required,uuid"`
	DestinationAddressID string  `json:"destinationAddressId" validate:"required,uuid"`
	FromAddressID        *string `json:"fromAddressId,omitempty" validate:"omitempty,uuid"`
	Weight               float64 `json:"weight" validate:"required,gt=0"`
	Type                 string  `json:"type" validate:"required,oneof=NORMAL FRAGILE FOOD"`
	Description          string  `json:"description,omitempty"`
}

// CreateParcelResponse returns the identifiers of the new parcel and its
// initial relay order.
type CreateParcelResponse struct {
	ParcelID string `json:"parcelId"`
	OrderID  string `json:"orderId"`
}

// ClaimOrderRequest is the body for POST /api/v1/orders/:orderId/claim.
type ClaimOrderRequest struct {
	CourierID string `json:"courierId" validate:"required,uuid"`
}

// FinishOrderRequest is the body for POST /api/v1/orders/:orderId/finish.
type FinishOrderRequest struct {
	CourierID string `json:"courierId" validate:"required,uuid"`
}

// AvailableOrder is one claimable order in GET /api/v1/orders/available.
type AvailableOrder struct {
	OrderID       string  `json:"orderId"`
	ParcelID      string  `json:"parcelId"`
	FromAddressID string  `json:"fromAddressId"`
	ToAddressID   *string `json:"toAddressId,omitempty"`
	Weight        float64 `json:"weight"`
	Type          string  `json:"type"`
	Description   string  `json:"description,omitempty"`
}

// Delivery is one claimed order in GET /api/v1/accounts/:accountId/deliveries.
type Delivery struct {
	OrderID     string     `json:"orderId"`
	ParcelID    string     `json:"parcelId"`
	Description string     `json:"description,omitempty"`
	Weight      float64    `json:"weight"`
	StartedAt   time.Time  `json:"startedAt"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

// DeliveriesResponse partitions a courier's deliveries by completion.
type DeliveriesResponse struct {
	Active []Delivery `json:"active"`
	Past   []Delivery `json:"past"`
}

// Parcel is one posted parcel in GET /api/v1/accounts/:accountId/parcels.
type Parcel struct {
	ParcelID             string  `json:"parcelId"`
	ReceiverID           string  `json:"receiverId"`
	DestinationAddressID string  `json:"destinationAddressId"`
	Weight               float64 `json:"weight"`
	Type                 string  `json:"type"`
	Description          string  `json:"description,omitempty"`
	Status               string  `json:"status"`
}

// ParcelsResponse groups a sender's parcels by delivery progress.
type ParcelsResponse struct {
	AwaitingDelivery []Parcel `json:"awaitingDelivery"`
	InDelivery       []Parcel `json:"inDelivery"`
	Delivered        []Parcel `json:"delivered"`
}
