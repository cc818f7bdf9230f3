package truck_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTruck(t *testing.T) {
	t.Run("creates available active truck", func(t *testing.T) {
		tr, err := truck.NewTruck(kernel.NewUUID(), "AA-123-BB", "Volvo", "FH16", 250000)
		require.NoError(t, err)

		assert.Equal(t, kernel.Available, tr.Availability())
		assert.True(t, tr.IsActive())
		assert.Equal(t, 250000.0, tr.OdometerKm())
	})

	t.Run("rejects missing plate", func(t *testing.T) {
		_, err := truck.NewTruck(kernel.NewUUID(), "", "Volvo", "FH16", 0)
		require.ErrorIs(t, err, truck.ErrPlateIsRequired)
	})

	t.Run("rejects negative odometer", func(t *testing.T) {
		_, err := truck.NewTruck(kernel.NewUUID(), "AA-123-BB", "Volvo", "FH16", -1)
		require.Error(t, err)
	})
}

func TestTruck_AddDistance(t *testing.T) {
	t.Run("accumulates completed order distance", func(t *testing.T) {
		tr, err := truck.NewTruck(kernel.NewUUID(), "AA-123-BB", "Volvo", "FH16", 1000)
		require.NoError(t, err)

		require.NoError(t, tr.AddDistance(150))
		assert.Equal(t, 1150.0, tr.OdometerKm())

		require.NoError(t, tr.AddDistance(0))
		assert.Equal(t, 1150.0, tr.OdometerKm())
	})

	t.Run("rejects negative distance", func(t *testing.T) {
		tr, err := truck.NewTruck(kernel.NewUUID(), "AA-123-BB", "Volvo", "FH16", 1000)
		require.NoError(t, err)

		require.Error(t, tr.AddDistance(-10))
		assert.Equal(t, 1000.0, tr.OdometerKm())
	})
}

func TestTruck_Archive(t *testing.T) {
	tr, err := truck.NewTruck(kernel.NewUUID(), "AA-123-BB", "Volvo", "FH16", 0)
	require.NoError(t, err)

	tr.Claim()
	require.ErrorIs(t, tr.Archive(), truck.ErrTruckIsBusy)

	tr.Release()
	require.NoError(t, tr.Archive())
	assert.False(t, tr.IsActive())
}
