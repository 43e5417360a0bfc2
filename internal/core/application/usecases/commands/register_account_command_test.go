package commands_test

import (
	"testing"

	"parcelrelay/internal/core/application/usecases/commands"
	"parcelrelay/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterAccountCommand_ValidInput(t *testing.T) {
	accountID := kernel.NewUUID()
	addressID := kernel.NewUUID()

	cmd, err := commands.NewRegisterAccountCommand(accountID, "Jane Doe", "jane@example.com", &addressID)
	require.NoError(t, err)
	assert.Equal(t, accountID, cmd.AccountID())
	assert.Equal(t, "Jane Doe", cmd.Name())
	assert.Equal(t, "jane@example.com", cmd.Email())
	require.NotNil(t, cmd.HomeAddressID())
	assert.Equal(t, addressID, *cmd.HomeAddressID())
}

func TestNewRegisterAccountCommand_NilAddressAllowed(t *testing.T) {
	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "Jane Doe", "jane@example.com", nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.HomeAddressID())
}

func TestNewRegisterAccountCommand_EmptyNameAllowed(t *testing.T) {
	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), " ", "jane@example.com", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Name())
}

func TestNewRegisterAccountCommand_EmptyEmail(t *testing.T) {
	_, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "Jane Doe", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmailIsRequired)
}

func TestNewRegisterAccountCommand_InvalidAccountID(t *testing.T) {
	_, err := commands.NewRegisterAccountCommand(kernel.UUID{}, "Jane Doe", "jane@example.com", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRegisterAccountCommand_InvalidAddressID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), "Jane Doe", "jane@example.com", &invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
