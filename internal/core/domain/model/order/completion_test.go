package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletion(t *testing.T) {
	t.Run("computes total and fuel cost", func(t *testing.T) {
		completion, err := order.NewCompletion(100, 50, 0.38, false)
		require.NoError(t, err)

		assert.Equal(t, 100.0, completion.KmDomestic())
		assert.Equal(t, 50.0, completion.KmInternational())
		assert.Equal(t, 150.0, completion.TotalKm())

		fuelCost, ok := completion.FuelCost()
		assert.True(t, ok)
		assert.InDelta(t, 57.0, fuelCost, 0.0001)
		assert.False(t, completion.FuelSkipped())
	})

	t.Run("skip flag suppresses fuel cost", func(t *testing.T) {
		completion, err := order.NewCompletion(100, 50, 0.38, true)
		require.NoError(t, err)

		_, ok := completion.FuelCost()
		assert.False(t, ok)
		assert.True(t, completion.FuelSkipped())
		assert.Equal(t, 150.0, completion.TotalKm())
	})

	t.Run("zero distances are allowed", func(t *testing.T) {
		completion, err := order.NewCompletion(0, 0, 0.38, false)
		require.NoError(t, err)
		assert.Equal(t, 0.0, completion.TotalKm())
	})

	t.Run("rejects negative distances", func(t *testing.T) {
		_, err := order.NewCompletion(-1, 50, 0.38, false)
		require.Error(t, err)
		_, err = order.NewCompletion(100, -1, 0.38, false)
		require.Error(t, err)
	})

	t.Run("rejects non-positive fuel rate", func(t *testing.T) {
		_, err := order.NewCompletion(100, 50, 0, false)
		require.Error(t, err)
	})
}

func TestRestoreCompletion(t *testing.T) {
	t.Run("restores persisted figures", func(t *testing.T) {
		completion, err := order.RestoreCompletion(100, 50, 150, 57, false)
		require.NoError(t, err)
		require.NoError(t, completion.Validate())

		fuelCost, ok := completion.FuelCost()
		assert.True(t, ok)
		assert.Equal(t, 57.0, fuelCost)
	})

	t.Run("rejects inconsistent total", func(t *testing.T) {
		_, err := order.RestoreCompletion(100, 50, 140, 57, false)
		require.Error(t, err)
	})
}

func TestCompletion_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var completion order.Completion
		require.ErrorIs(t, completion.Validate(), order.ErrCompletionIsNotConstructed)
	})
}
