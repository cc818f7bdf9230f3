package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, clientID, driverID, truckID, trailerID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), clientID, driverID, truckID, trailerID,
		order.FullLoad, "granite blocks", "Tirana", "Vienna",
		time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), 2350,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testClient := newTestClient(t)
	testDriver := newTestDriver(t)
	testTruck := newTestTruck(t)
	testTrailer := newTestTrailer(t)
	cmd := newCreateOrderCommand(t, testClient.ID(), testDriver.ID(), testTruck.ID(), testTrailer.ID())

	number, err := order.NewNumber(14, time.Now().Year())
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.expectTx(ctx)
	uow.clients.On("Get", ctx, testClient.ID()).Return(testClient, nil).Once()
	uow.drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil)
	uow.trucks.On("Get", ctx, testTruck.ID()).Return(testTruck, nil)
	uow.trailers.On("Get", ctx, testTrailer.ID()).Return(testTrailer, nil)
	uow.orders.On("NextNumber", ctx, time.Now().Year()).Return(number, nil).Once()

	var added *order.Order
	uow.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	uow.drivers.On("Update", ctx, testDriver).Return(nil).Once()
	uow.trucks.On("Update", ctx, testTruck).Return(nil).Once()
	uow.trailers.On("Update", ctx, testTrailer).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.Equal(t, order.Pending, added.Status())
	assert.True(t, added.Number().IsEqual(number))
	assert.Equal(t, testDriver.ID(), added.DriverID())
	assert.Nil(t, added.StartDate())

	// Creation claims the whole triplet.
	assert.Equal(t, kernel.Busy, testDriver.Availability())
	assert.Equal(t, kernel.Busy, testTruck.Availability())
	assert.Equal(t, kernel.Busy, testTrailer.Availability())

	uow.AssertExpectations(t)
	uow.orders.AssertExpectations(t)
	uow.drivers.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DriverBusy(t *testing.T) {
	ctx := t.Context()

	testClient := newTestClient(t)
	testDriver := newTestDriver(t)
	testDriver.Claim()
	testTruck := newTestTruck(t)
	testTrailer := newTestTrailer(t)
	cmd := newCreateOrderCommand(t, testClient.ID(), testDriver.ID(), testTruck.ID(), testTrailer.ID())

	uow := NewMockUoW()
	uow.expectRolledBackTx(ctx)
	uow.clients.On("Get", ctx, testClient.ID()).Return(testClient, nil).Once()
	uow.drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriverIsNotAvailable)

	uow.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_TrailerArchived(t *testing.T) {
	ctx := t.Context()

	testClient := newTestClient(t)
	testDriver := newTestDriver(t)
	testTruck := newTestTruck(t)
	testTrailer := newTestTrailer(t)
	require.NoError(t, testTrailer.Archive())
	cmd := newCreateOrderCommand(t, testClient.ID(), testDriver.ID(), testTruck.ID(), testTrailer.ID())

	uow := NewMockUoW()
	uow.expectRolledBackTx(ctx)
	uow.clients.On("Get", ctx, testClient.ID()).Return(testClient, nil).Once()
	uow.drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.trucks.On("Get", ctx, testTruck.ID()).Return(testTruck, nil).Once()
	uow.trailers.On("Get", ctx, testTrailer.ID()).Return(testTrailer, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTrailerIsNotAvailable)

	uow.orders.AssertNotCalled(t, "NextNumber", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)

	var cmd commands.CreateOrderCommand
	err := handler.Handle(t.Context(), cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
