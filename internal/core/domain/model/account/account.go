// Package account contains the Account aggregate. An account is a marketplace
// participant; whether it acts as sender, receiver, or courier is contextual
// and never stored.
package account

import (
	"errors"
	"strings"
	"time"

	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")

// Account represents a participant in the parcel relay marketplace.
// The email is required; name and home address are optional.
type Account struct {
	id            kernel.UUID
	name          string
	email         string
	addressID     *kernel.UUID
	createdAt     time.Time
	isConstructed bool
}

// NewAccount creates an Account with the given email and optional display
// name and home address. The creation timestamp is recorded in UTC.
func NewAccount(id kernel.UUID, name string, email string, addressID *kernel.UUID, now time.Time) (*Account, error) {
	account := &Account{
		name:          name,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account from persistence.
func RestoreAccount(
	id kernel.UUID, name string, email string, addressID *kernel.UUID, createdAt time.Time,
) (*Account, error) {
	account, err := NewAccount(id, name, email, addressID, createdAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Validate ensures the Account was constructed through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the optional display name. Empty when never set.
func (a *Account) Name() string {
	return a.name
}

// Email returns the account's email address.
func (a *Account) Email() string {
	return a.email
}

// HomeAddress returns the optional home address reference.
func (a *Account) HomeAddress() *kernel.UUID {
	return a.addressID
}

// CreatedAt returns the account creation timestamp in UTC.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// Rename updates the display name. An empty name clears it.
func (a *Account) Rename(name string) {
	a.name = name
}

// MoveTo updates the home address reference.
func (a *Account) MoveTo(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	a.addressID = &addressID
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setAddressID(addressID *kernel.UUID) error {
	if addressID == nil {
		return nil
	}
	if err := addressID.Validate(); err != nil {
		return err
	}
	id := *addressID
	a.addressID = &id
	return nil
}
