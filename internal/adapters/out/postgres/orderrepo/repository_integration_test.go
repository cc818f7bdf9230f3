package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(sequence int) *order.Order {
	number, err := order.NewNumber(sequence, 2026)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		order.FullLoad,
		"granite blocks",
		"Tirana",
		"Vienna",
		time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		2350,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), loaded.ID())
	suite.Equal("OD-01/2026", loaded.Number().String())
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(testOrder.DriverID(), loaded.DriverID())
	suite.Equal("granite blocks", loaded.GoodsDescription())
	suite.Nil(loaded.StartDate())
	suite.Nil(loaded.Completion())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CompletedOrderKeepsFigures() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	completion, err := order.NewCompletion(100, 50, 0.38, false)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Complete(completion, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, loaded.Status())
	suite.Require().NotNil(loaded.EndDate())

	loadedCompletion := loaded.Completion()
	suite.Require().NotNil(loadedCompletion)
	suite.InEpsilon(150.0, loadedCompletion.TotalKm(), 1e-9)
	fuelCost, ok := loadedCompletion.FuelCost()
	suite.Require().True(ok)
	suite.InEpsilon(57.0, fuelCost, 1e-9)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_SkippedFuelSurvivesRoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	completion, err := order.NewCompletion(80, 0, 0.38, true)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Complete(completion, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	loadedCompletion := loaded.Completion()
	suite.Require().NotNil(loadedCompletion)
	suite.True(loadedCompletion.FuelSkipped())
	_, ok := loadedCompletion.FuelCost()
	suite.False(ok)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(4)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	_, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	// Deleting again reports not found.
	err = suite.repository.Delete(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextNumber_PerYearSequence() {
	ctx := context.Background()

	number, err := suite.repository.NextNumber(ctx, 2026)
	suite.Require().NoError(err)
	suite.Equal("OD-01/2026", number.String())

	first := suite.createTestOrder(number.Sequence())
	suite.Require().NoError(suite.repository.Add(ctx, first))

	number, err = suite.repository.NextNumber(ctx, 2026)
	suite.Require().NoError(err)
	suite.Equal("OD-02/2026", number.String())

	// A different year starts its own sequence.
	number, err = suite.repository.NextNumber(ctx, 2027)
	suite.Require().NoError(err)
	suite.Equal("OD-01/2027", number.String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNumberUniqueConstraint() {
	ctx := context.Background()

	first := suite.createTestOrder(5)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestOrder(5)
	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllNonTerminal() {
	ctx := context.Background()

	pending := suite.createTestOrder(6)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	failed := suite.createTestOrder(7)
	suite.Require().NoError(failed.Fail())
	suite.Require().NoError(suite.repository.Add(ctx, failed))

	completed := suite.createTestOrder(8)
	completion, err := order.NewCompletion(10, 0, 0.38, false)
	suite.Require().NoError(err)
	suite.Require().NoError(completed.Complete(completion, time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, completed))

	orders, err := suite.repository.GetAllNonTerminal(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(pending.ID(), orders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestActiveOrderCountFor() {
	ctx := context.Background()

	active := suite.createTestOrder(9)
	suite.Require().NoError(suite.repository.Add(ctx, active))

	terminal := suite.createTestOrder(10)
	suite.Require().NoError(terminal.Fail())
	suite.Require().NoError(suite.repository.Add(ctx, terminal))

	count, err := suite.repository.ActiveOrderCountFor(ctx, active.DriverID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.repository.ActiveOrderCountFor(ctx, active.TrailerID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	// The failed order no longer claims its resources.
	count, err = suite.repository.ActiveOrderCountFor(ctx, terminal.DriverID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
