package commands

import (
	"errors"
	"strings"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// RegisterAccountCommand represents a request to register a new account.
// Accounts act both as senders who post parcels and as couriers who claim
// relay orders, so there is a single registration path for both roles.
//
// Example:
//
//	accountID := kernel.NewUUID()
//	cmd, err := NewRegisterAccountCommand(accountID, "Jane Doe", "jane@example.com", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid account data: %w", err)
//	}
//
//	handler := NewRegisterAccountCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register account: %w", err)
//	}
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID     kernel.UUID
	name          string
	email         string
	homeAddressID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// The display name is optional. The home address is also optional at
// registration time, but without one the account cannot post parcels.
// Returns an error if any validation fails.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	name string,
	email string,
	homeAddressID *kernel.UUID,
) (RegisterAccountCommand, error) {
	accountCommand := RegisterAccountCommand{
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		accountCommand.setAccountID(accountID),
		accountCommand.setEmail(email),
		accountCommand.setHomeAddressID(homeAddressID),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return accountCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterAccountCommandIsNotConstructed if validation fails.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the account holder's display name, empty when none was given.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the account's contact email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// HomeAddressID returns the optional home address reference, or nil.
func (c RegisterAccountCommand) HomeAddressID() *kernel.UUID {
	return c.homeAddressID
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setHomeAddressID(homeAddressID *kernel.UUID) error {
	if homeAddressID == nil {
		return nil
	}
	if err := homeAddressID.Validate(); err != nil {
		return err
	}

	c.homeAddressID = homeAddressID
	return nil
}
