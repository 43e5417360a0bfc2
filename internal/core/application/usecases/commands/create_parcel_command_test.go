package commands_test

import (
	"testing"

	"parcelrelay/internal/core/application/usecases/commands"
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateParcelCommand_ValidInput(t *testing.T) {
	parcelID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	senderID := kernel.NewUUID()
	receiverID := kernel.NewUUID()
	destinationID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(
		parcelID, orderID, senderID, receiverID, destinationID, nil,
		2.5, parcel.TypeFragile, "vinyl records",
	)
	require.NoError(t, err)
	assert.Equal(t, parcelID, cmd.ParcelID())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, senderID, cmd.SenderID())
	assert.Equal(t, receiverID, cmd.ReceiverID())
	assert.Equal(t, destinationID, cmd.DestinationAddressID())
	assert.InDelta(t, 2.5, cmd.Weight(), 0.0001)
	assert.Equal(t, parcel.TypeFragile, cmd.ParcelType())
	assert.Equal(t, "vinyl records", cmd.Description())
}

func TestNewCreateParcelCommand_EmptyDescriptionAllowed(t *testing.T) {
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		1, parcel.TypeNormal, "",
	)
	require.NoError(t, err)
	assert.Empty(t, cmd.Description())
}

func TestNewCreateParcelCommand_WithPickupAddress(t *testing.T) {
	pickupID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &pickupID,
		1, parcel.TypeNormal, "",
	)
	require.NoError(t, err)
	require.NotNil(t, cmd.FromAddressID())
	assert.Equal(t, pickupID, *cmd.FromAddressID())
}

func TestNewCreateParcelCommand_InvalidPickupAddress(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &invalidID,
		1, parcel.TypeNormal, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateParcelCommand_InvalidParcelID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateParcelCommand(
		invalidID, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		1, parcel.TypeNormal, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateParcelCommand_InvalidWeight(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		0, parcel.TypeNormal, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}

func TestNewCreateParcelCommand_InvalidType(t *testing.T) {
	_, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		1, parcel.TypeUnknown, "",
	)
	require.Error(t, err)
}
