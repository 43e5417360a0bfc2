package commands

import (
	"context"
	"time"

	"parcelrelay/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler persists new accounts.
// Verifies the referenced home address exists before the account is created,
// so a registered account never points at a dangling address.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account registration command.
// When a home address is supplied it must already exist; a missing address
// surfaces as an ObjectNotFoundError from the address repository.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, command RegisterAccountCommand) error {
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

	if command.HomeAddressID() != nil {
		if _, err := uow.AddressRepository().Get(ctx, *command.HomeAddressID()); err != nil {
			return err
		}
	}

	newAccount, err := account.NewAccount(
		command.AccountID(),
		command.Name(),
		command.Email(),
		command.HomeAddressID(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err := uow.AccountRepository().Add(ctx, newAccount); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
