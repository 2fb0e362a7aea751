package commands_test

import (
	"testing"

	"delivery-tracking/internal/core/application/usecases/commands"
	"delivery-tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDriverCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		// Given
		driverID := kernel.NewUUID()
		location, err := kernel.NewGeoPoint(45.7640, 4.8357)
		require.NoError(t, err)

		// When
		cmd, err := commands.NewCreateDriverCommand(driverID, "Marco", "bike", "AB-123-CD", &location)

		// Then
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, driverID.IsEqual(cmd.DriverID()))
		assert.Equal(t, "Marco", cmd.Name())
		assert.Equal(t, "bike", cmd.VehicleType())
		assert.Equal(t, "AB-123-CD", cmd.VehicleNumber())
		require.NotNil(t, cmd.Location())
	})

	t.Run("location_is_optional", func(t *testing.T) {
		// When
		cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "Marco", "car", "XY-999-ZZ", nil)

		// Then
		require.NoError(t, err)
		assert.Nil(t, cmd.Location())
	})

	t.Run("rejects_missing_required_fields", func(t *testing.T) {
		// Then
		_, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "", "bike", "AB-123-CD", nil)
		require.Error(t, err)
		_, err = commands.NewCreateDriverCommand(kernel.NewUUID(), "Marco", "", "AB-123-CD", nil)
		require.Error(t, err)
		_, err = commands.NewCreateDriverCommand(kernel.NewUUID(), "Marco", "bike", "", nil)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var cmd commands.CreateDriverCommand

		// Then
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDriverCommandIsNotConstructed)
	})
}
