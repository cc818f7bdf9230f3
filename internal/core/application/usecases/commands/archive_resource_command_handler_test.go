package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveResourceCommandHandler_Handle_Driver(t *testing.T) {
	ctx := t.Context()
	testDriver := newTestDriver(t)

	cmd, err := commands.NewArchiveResourceCommand(kernel.KindDriver, testDriver.ID())
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.expectTx(ctx)
	uow.orders.On("ActiveOrderCountFor", ctx, testDriver.ID()).Return(int64(0), nil).Once()
	uow.drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	uow.drivers.On("Update", ctx, testDriver).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewArchiveResourceCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.False(t, testDriver.IsActive())
	uow.drivers.AssertExpectations(t)
}

func TestArchiveResourceCommandHandler_Handle_BusyDriverRejected(t *testing.T) {
	ctx := t.Context()
	testDriver := newTestDriver(t)
	testDriver.Claim()

	cmd, err := commands.NewArchiveResourceCommand(kernel.KindDriver, testDriver.ID())
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.expectRolledBackTx(ctx)
	uow.orders.On("ActiveOrderCountFor", ctx, testDriver.ID()).Return(int64(0), nil).Once()
	uow.drivers.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewArchiveResourceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, driver.ErrDriverIsBusy)

	assert.True(t, testDriver.IsActive())
	uow.drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestArchiveResourceCommandHandler_Handle_ClaimedByOrderRejected(t *testing.T) {
	ctx := t.Context()
	resourceID := kernel.NewUUID()

	cmd, err := commands.NewArchiveResourceCommand(kernel.KindTrailer, resourceID)
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.expectRolledBackTx(ctx)
	uow.orders.On("ActiveOrderCountFor", ctx, resourceID).Return(int64(1), nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewArchiveResourceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, trailer.ErrTrailerIsBusy)

	// The availability flag is not consulted when an order still holds the
	// resource, so the trailer repo must stay untouched.
	uow.trailers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestArchiveResourceCommandHandler_Handle_Trailer(t *testing.T) {
	ctx := t.Context()
	testTrailer := newTestTrailer(t)

	cmd, err := commands.NewArchiveResourceCommand(kernel.KindTrailer, testTrailer.ID())
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.expectTx(ctx)
	uow.orders.On("ActiveOrderCountFor", ctx, testTrailer.ID()).Return(int64(0), nil).Once()
	uow.trailers.On("Get", ctx, testTrailer.ID()).Return(testTrailer, nil).Once()
	uow.trailers.On("Update", ctx, testTrailer).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewArchiveResourceCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.False(t, testTrailer.IsActive())
}

func TestNewArchiveResourceCommand_InvalidKind(t *testing.T) {
	_, err := commands.NewArchiveResourceCommand(kernel.ResourceKindUnknown, kernel.NewUUID())
	require.Error(t, err)
}

func TestRestoreResourceCommandHandler_Handle_Truck(t *testing.T) {
	ctx := t.Context()
	testTruck := newTestTruck(t)
	require.NoError(t, testTruck.Archive())

	cmd, err := commands.NewRestoreResourceCommand(kernel.KindTruck, testTruck.ID())
	require.NoError(t, err)

	uow := NewMockUoW()
	uow.expectTx(ctx)
	uow.trucks.On("Get", ctx, testTruck.ID()).Return(testTruck, nil).Once()
	uow.trucks.On("Update", ctx, testTruck).Return(nil).Once()

	factory := new(MockResourceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRestoreResourceCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, testTruck.IsActive())
	uow.trucks.AssertExpectations(t)
}
