package commands_test

import (
	"testing"

	"parcelrelay/internal/core/application/usecases/commands"
	"parcelrelay/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFinishOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	cmd, err := commands.NewFinishOrderCommand(orderID, courierID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, courierID, cmd.CourierID())
}

func TestNewFinishOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewFinishOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewFinishOrderCommand_InvalidCourierID(t *testing.T) {
	_, err := commands.NewFinishOrderCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
