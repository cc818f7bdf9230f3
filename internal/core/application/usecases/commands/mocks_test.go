package commands_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/client"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/trailer"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllNonTerminal(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context, year int) (order.Number, error) {
	args := m.Called(ctx, year)
	return args.Get(0).(order.Number), args.Error(1)
}

func (m *MockOrderRepository) ActiveOrderCountFor(ctx context.Context, resourceID kernel.UUID) (int64, error) {
	args := m.Called(ctx, resourceID)
	return args.Get(0).(int64), args.Error(1)
}

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

func (m *MockDriverRepository) GetAllActive(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
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

func (m *MockTruckRepository) GetAllActive(ctx context.Context) ([]*truck.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*truck.Truck), args.Error(1)
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

func (m *MockTrailerRepository) GetAllActive(ctx context.Context) ([]*trailer.Trailer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trailer.Trailer), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

// MockUoW implements every unit of work shape the handlers use.
type MockUoW struct {
	mock.Mock

	orders   *MockOrderRepository
	drivers  *MockDriverRepository
	trucks   *MockTruckRepository
	trailers *MockTrailerRepository
	clients  *MockClientRepository
}

func NewMockUoW() *MockUoW {
	return &MockUoW{
		orders:   new(MockOrderRepository),
		drivers:  new(MockDriverRepository),
		trucks:   new(MockTruckRepository),
		trailers: new(MockTrailerRepository),
		clients:  new(MockClientRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository     { return m.orders }
func (m *MockUoW) DriverRepository() ports.DriverRepository   { return m.drivers }
func (m *MockUoW) TruckRepository() ports.TruckRepository     { return m.trucks }
func (m *MockUoW) TrailerRepository() ports.TrailerRepository { return m.trailers }
func (m *MockUoW) ClientRepository() ports.ClientRepository   { return m.clients }

// expectTx arms the usual Begin/Commit/Rollback sequence of a successful
// handler run: commit succeeds and the deferred rollback is a no-op.
func (m *MockUoW) expectTx(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Commit", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// expectRolledBackTx arms Begin and Rollback for a run that fails before
// commit.
func (m *MockUoW) expectRolledBackTx(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockResourceUoWFactory struct{ mock.Mock }

func (m *MockResourceUoWFactory) Create() commands.ResourceUoW {
	args := m.Called()
	return args.Get(0).(commands.ResourceUoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockTruckUoWFactory struct{ mock.Mock }

func (m *MockTruckUoWFactory) Create() commands.TruckUoW {
	args := m.Called()
	return args.Get(0).(commands.TruckUoW)
}

type MockTrailerUoWFactory struct{ mock.Mock }

func (m *MockTrailerUoWFactory) Create() commands.TrailerUoW {
	args := m.Called()
	return args.Get(0).(commands.TrailerUoW)
}

// Test fixtures shared across handler tests.

func newTestDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Arben Hoxha", "AL-1234567", "+355 69 000 0000")
	require.NoError(t, err)
	return d
}

func newTestTruck(t *testing.T) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), "AA-123-BB", "Volvo", "FH16", 120000)
	require.NoError(t, err)
	return tr
}

func newTestTrailer(t *testing.T) *trailer.Trailer {
	t.Helper()
	tl, err := trailer.NewTrailer(kernel.NewUUID(), "AA-456-CC", "Schmitz", "Tarpaulin")
	require.NoError(t, err)
	return tl
}

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(
		kernel.NewUUID(), "Adriatic Stone Ltd", "Mira Shehu", "+355 4 000 000", "office@adriaticstone.example", "Tirana",
	)
	require.NoError(t, err)
	return c
}

func newTestOrder(t *testing.T, driverID, truckID, trailerID kernel.UUID) *order.Order {
	t.Helper()
	number, err := order.NewNumber(7, 2026)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		driverID,
		truckID,
		trailerID,
		order.FullLoad,
		"granite blocks",
		"Tirana",
		"Vienna",
		time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		2350,
	)
	require.NoError(t, err)
	return o
}
