package fleet_test

import (
	"testing"

	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	t.Run("should create an available vehicle", func(t *testing.T) {
		v, err := fleet.NewVehicle("AB123CD", "TRK", 20000, 80)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "AB123CD", v.Plate())
		assert.Equal(t, "TRK", v.TransportType())
		assert.Equal(t, 20000, v.MaxWeight())
		assert.Equal(t, 80, v.MaxVolume())
		assert.True(t, v.IsAvailable())
	})

	t.Run("should enforce field lengths", func(t *testing.T) {
		_, err := fleet.NewVehicle("ABCDEFGHIJ", "TRUCK", 1, 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "license_plate")
		assert.Contains(t, err.Error(), "transport_type")
	})

	t.Run("should require positive capacities", func(t *testing.T) {
		_, err := fleet.NewVehicle("AB123CD", "VAN", 0, -5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_weight")
		assert.Contains(t, err.Error(), "max_volume")
	})

	t.Run("should require a plate", func(t *testing.T) {
		_, err := fleet.NewVehicle("  ", "VAN", 1, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVehicle_ReserveRelease(t *testing.T) {
	v, _ := fleet.NewVehicle("AB123CD", "VAN", 1000, 10)

	require.NoError(t, v.Reserve())
	require.ErrorIs(t, v.Reserve(), errs.ErrResourceUnavailable)

	v.Release()
	assert.True(t, v.IsAvailable())
	v.Release()
	assert.True(t, v.IsAvailable())
}

func TestVehicle_Update(t *testing.T) {
	v, _ := fleet.RestoreVehicle("AB123CD", "VAN", 1000, 10, false, 2)

	require.NoError(t, v.Update("TRK", 5000, 40))
	assert.Equal(t, "AB123CD", v.Plate())
	assert.Equal(t, "TRK", v.TransportType())
	assert.Equal(t, 5000, v.MaxWeight())
	assert.False(t, v.IsAvailable())
	assert.Equal(t, 2, v.Version())

	require.Error(t, v.Update("TRK", 0, 40))
	assert.Equal(t, 5000, v.MaxWeight())
}
