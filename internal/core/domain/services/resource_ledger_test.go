package services_test

import (
	"context"
	"errors"
	"testing"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trailer"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}
func (m *MockDriverRepository) GetAllActive(_ context.Context) ([]*driver.Driver, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTruckRepository struct{ mock.Mock }

func (m *MockTruckRepository) Add(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTruckRepository) Update(ctx context.Context, t *truck.Truck) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*truck.Truck), args.Error(1)
}
func (m *MockTruckRepository) GetAllActive(_ context.Context) ([]*truck.Truck, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTrailerRepository struct{ mock.Mock }

func (m *MockTrailerRepository) Add(ctx context.Context, t *trailer.Trailer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTrailerRepository) Update(ctx context.Context, t *trailer.Trailer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTrailerRepository) Get(ctx context.Context, id kernel.UUID) (*trailer.Trailer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trailer.Trailer), args.Error(1)
}
func (m *MockTrailerRepository) GetAllActive(_ context.Context) ([]*trailer.Trailer, error) {
	return nil, errors.New("not implemented in mock")
}

func newTestResources(t *testing.T) (*driver.Driver, *truck.Truck, *trailer.Trailer) {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), "Arben Hoxha", "AL-1234567", "")
	require.NoError(t, err)
	tr, err := truck.NewTruck(kernel.NewUUID(), "AA-123-BB", "Volvo", "FH16", 0)
	require.NoError(t, err)
	tl, err := trailer.NewTrailer(kernel.NewUUID(), "AA-456-CC", "Schmitz", "Tarpaulin")
	require.NoError(t, err)
	return d, tr, tl
}

func TestResourceLedger_SetStatuses_Claim(t *testing.T) {
	ctx := t.Context()
	d, tr, tl := newTestResources(t)

	drivers := new(MockDriverRepository)
	trucks := new(MockTruckRepository)
	trailers := new(MockTrailerRepository)

	drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	drivers.On("Update", ctx, d).Return(nil).Once()
	trucks.On("Get", ctx, tr.ID()).Return(tr, nil).Once()
	trucks.On("Update", ctx, tr).Return(nil).Once()
	trailers.On("Get", ctx, tl.ID()).Return(tl, nil).Once()
	trailers.On("Update", ctx, tl).Return(nil).Once()

	ledger := services.NewResourceLedger(drivers, trucks, trailers)
	err := ledger.SetStatuses(ctx, d.ID(), tr.ID(), tl.ID(), kernel.Busy)
	require.NoError(t, err)

	assert.Equal(t, kernel.Busy, d.Availability())
	assert.Equal(t, kernel.Busy, tr.Availability())
	assert.Equal(t, kernel.Busy, tl.Availability())
	drivers.AssertExpectations(t)
	trucks.AssertExpectations(t)
	trailers.AssertExpectations(t)
}

func TestResourceLedger_SetStatuses_Release(t *testing.T) {
	ctx := t.Context()
	d, tr, tl := newTestResources(t)
	d.Claim()
	tr.Claim()
	tl.Claim()

	drivers := new(MockDriverRepository)
	trucks := new(MockTruckRepository)
	trailers := new(MockTrailerRepository)

	drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	drivers.On("Update", ctx, d).Return(nil).Once()
	trucks.On("Get", ctx, tr.ID()).Return(tr, nil).Once()
	trucks.On("Update", ctx, tr).Return(nil).Once()
	trailers.On("Get", ctx, tl.ID()).Return(tl, nil).Once()
	trailers.On("Update", ctx, tl).Return(nil).Once()

	ledger := services.NewResourceLedger(drivers, trucks, trailers)
	err := ledger.SetStatuses(ctx, d.ID(), tr.ID(), tl.ID(), kernel.Available)
	require.NoError(t, err)

	assert.Equal(t, kernel.Available, d.Availability())
	assert.Equal(t, kernel.Available, tr.Availability())
	assert.Equal(t, kernel.Available, tl.Availability())
}

func TestResourceLedger_SetStatus(t *testing.T) {
	t.Run("rejects invalid kind", func(t *testing.T) {
		ledger := services.NewResourceLedger(
			new(MockDriverRepository), new(MockTruckRepository), new(MockTrailerRepository),
		)
		err := ledger.SetStatus(t.Context(), kernel.ResourceKindUnknown, kernel.NewUUID(), kernel.Busy)
		require.Error(t, err)
	})

	t.Run("rejects invalid availability", func(t *testing.T) {
		ledger := services.NewResourceLedger(
			new(MockDriverRepository), new(MockTruckRepository), new(MockTrailerRepository),
		)
		err := ledger.SetStatus(t.Context(), kernel.KindDriver, kernel.NewUUID(), kernel.AvailabilityUnknown)
		require.Error(t, err)
	})

	t.Run("propagates lookup failure", func(t *testing.T) {
		ctx := t.Context()
		drivers := new(MockDriverRepository)
		lookupErr := errors.New("driver not found")
		id := kernel.NewUUID()
		drivers.On("Get", ctx, id).Return(nil, lookupErr).Once()

		ledger := services.NewResourceLedger(
			drivers, new(MockTruckRepository), new(MockTrailerRepository),
		)
		err := ledger.SetStatus(ctx, kernel.KindDriver, id, kernel.Busy)
		require.ErrorIs(t, err, lookupErr)
	})
}

func TestResourceLedger_SetStatuses_StopsOnFirstFailure(t *testing.T) {
	ctx := t.Context()
	d, tr, tl := newTestResources(t)

	drivers := new(MockDriverRepository)
	trucks := new(MockTruckRepository)
	trailers := new(MockTrailerRepository)

	updateErr := errors.New("write rejected")
	drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	drivers.On("Update", ctx, d).Return(updateErr).Once()

	ledger := services.NewResourceLedger(drivers, trucks, trailers)
	err := ledger.SetStatuses(ctx, d.ID(), tr.ID(), tl.ID(), kernel.Busy)
	require.ErrorIs(t, err, updateErr)

	// Truck and trailer repositories were never touched.
	trucks.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	trailers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
