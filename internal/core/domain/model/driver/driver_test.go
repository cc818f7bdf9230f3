package driver_test

import (
	"testing"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("creates available active driver", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Arben Hoxha", "AL-1234567", "+355691234567")
		require.NoError(t, err)

		assert.Equal(t, kernel.Available, d.Availability())
		assert.True(t, d.IsActive())
		require.NoError(t, d.Validate())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", "AL-1234567", "")
		require.ErrorIs(t, err, driver.ErrNameIsRequired)
	})

	t.Run("rejects missing license number", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "Arben Hoxha", "", "")
		require.ErrorIs(t, err, driver.ErrLicenseNumberIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_ClaimRelease(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), "Arben Hoxha", "AL-1234567", "")
	require.NoError(t, err)

	d.Claim()
	assert.Equal(t, kernel.Busy, d.Availability())

	// Re-claim is a no-op; orders that skip statuses may claim again.
	d.Claim()
	assert.Equal(t, kernel.Busy, d.Availability())

	d.Release()
	assert.Equal(t, kernel.Available, d.Availability())

	d.Release()
	assert.Equal(t, kernel.Available, d.Availability())
}

func TestDriver_Archive(t *testing.T) {
	t.Run("archives available driver", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Arben Hoxha", "AL-1234567", "")
		require.NoError(t, err)

		require.NoError(t, d.Archive())
		assert.False(t, d.IsActive())

		d.Restore()
		assert.True(t, d.IsActive())
	})

	t.Run("rejects archiving claimed driver", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Arben Hoxha", "AL-1234567", "")
		require.NoError(t, err)
		d.Claim()

		require.ErrorIs(t, d.Archive(), driver.ErrDriverIsBusy)
		assert.True(t, d.IsActive())
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores busy archived driver", func(t *testing.T) {
		id := kernel.NewUUID()
		d, err := driver.RestoreDriver(id, "Arben Hoxha", "AL-1234567", "", kernel.Busy, false)
		require.NoError(t, err)

		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, kernel.Busy, d.Availability())
		assert.False(t, d.IsActive())
	})

	t.Run("rejects invalid availability", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), "Arben Hoxha", "AL-1234567", "", kernel.AvailabilityUnknown, true)
		require.Error(t, err)
	})
}
