package commands

import (
	"context"
	"errors"

	"parcelrelay/internal/core/domain/model/order"
	"parcelrelay/internal/core/domain/model/parcel"
)

// ErrSenderHasNoAddress is returned when no pickup address was given and the
// posting account has no home address to fall back on. Without either there
// is no pickup point for the initial order.
var ErrSenderHasNoAddress = errors.New("sender account has no home address")

// CreateParcelCommandHandler posts a parcel and opens its first relay order
// in a single transaction. The order runs from the requested pickup address
// (the sender's home address when none is given) to the parcel's destination
// and starts unclaimed, visible to every courier browsing the marketplace.
type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory UoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// Resolves the sender account, picks the pickup address (explicit from the
// command, else the sender's home address), then persists the parcel and its
// initial order atomically. A missing sender surfaces as an
// ObjectNotFoundError; no resolvable pickup address as ErrSenderHasNoAddress.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sender, err := uow.AccountRepository().Get(ctx, command.SenderID())
	if err != nil {
		return err
	}

	fromAddressID := command.FromAddressID()
	if fromAddressID == nil {
		fromAddressID = sender.HomeAddress()
	}
	if fromAddressID == nil {
		return ErrSenderHasNoAddress
	}

	newParcel, err := parcel.NewParcel(
		command.ParcelID(),
		command.SenderID(),
		command.ReceiverID(),
		command.DestinationAddressID(),
		command.Weight(),
		command.ParcelType(),
		command.Description(),
	)
	if err != nil {
		return err
	}

	initialOrder, err := order.NewOrder(
		command.OrderID(),
		newParcel.ID(),
		*fromAddressID,
		command.DestinationAddressID(),
	)
	if err != nil {
		return err
	}

	if err := uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, initialOrder); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
