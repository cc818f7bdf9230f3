package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateOrderArgs() (kernel.UUID, kernel.UUID, kernel.UUID, kernel.UUID, kernel.UUID) {
	return kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID, clientID, driverID, truckID, trailerID := validCreateOrderArgs()
	loadingDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand(
		orderID, clientID, driverID, truckID, trailerID,
		order.FullLoad, "granite blocks", "Tirana", "Vienna", loadingDate, 2350,
	)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, clientID, cmd.ClientID())
	assert.Equal(t, driverID, cmd.DriverID())
	assert.Equal(t, truckID, cmd.TruckID())
	assert.Equal(t, trailerID, cmd.TrailerID())
	assert.Equal(t, order.FullLoad, cmd.TransportType())
	assert.Equal(t, "granite blocks", cmd.GoodsDescription())
	assert.Equal(t, "Tirana", cmd.LoadingAddress())
	assert.Equal(t, "Vienna", cmd.UnloadingAddress())
	assert.Equal(t, loadingDate, cmd.LoadingDate())
	assert.InEpsilon(t, 2350.0, cmd.Price(), 1e-9)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	orderID, clientID, driverID, truckID, trailerID := validCreateOrderArgs()
	loadingDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("zero order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, clientID, driverID, truckID, trailerID,
			order.FullLoad, "granite blocks", "Tirana", "Vienna", loadingDate, 2350,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("unknown transport type", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, clientID, driverID, truckID, trailerID,
			order.TransportTypeUnknown, "granite blocks", "Tirana", "Vienna", loadingDate, 2350,
		)
		require.Error(t, err)
	})

	t.Run("empty goods description", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, clientID, driverID, truckID, trailerID,
			order.FullLoad, "", "Tirana", "Vienna", loadingDate, 2350,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrGoodsDescriptionIsRequired)
	})

	t.Run("empty addresses", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, clientID, driverID, truckID, trailerID,
			order.FullLoad, "granite blocks", "", "Vienna", loadingDate, 2350,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrLoadingAddressIsRequired)

		_, err = commands.NewCreateOrderCommand(
			orderID, clientID, driverID, truckID, trailerID,
			order.FullLoad, "granite blocks", "Tirana", "", loadingDate, 2350,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrUnloadingAddressIsRequired)
	})

	t.Run("zero loading date", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, clientID, driverID, truckID, trailerID,
			order.FullLoad, "granite blocks", "Tirana", "Vienna", time.Time{}, 2350,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrLoadingDateIsRequired)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, clientID, driverID, truckID, trailerID,
			order.FullLoad, "granite blocks", "Tirana", "Vienna", loadingDate, -1,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
	})
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
