package commands

import (
	"context"

	"parcelrelay/internal/core/domain/model/address"
)

// CreateAddressCommandHandler persists new addresses.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

// NewCreateAddressCommandHandler creates a handler for address registration.
func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the address creation command.
// Construction errors from the aggregate (an address with neither postal
// fields nor coordinates) are returned to the caller unchanged.
func (h CreateAddressCommandHandler) Handle(ctx context.Context, command CreateAddressCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newAddress, err := address.NewAddress(command.AddressID(), command.Fields(), command.Geo())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AddressRepository().Add(ctx, newAddress); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
