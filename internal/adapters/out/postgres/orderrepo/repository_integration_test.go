package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL container.
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.Order {
	location, err := kernel.NewGeoPoint(6.3703, 2.3912)
	suite.Require().NoError(err)

	client, err := order.NewClient("Ama Dossou", "ama@example.com", "+22997000001",
		"12 Rue des Cheminots, Cotonou", location)
	suite.Require().NoError(err)

	first, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, 10)
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, 5)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), number, client,
		[]order.Item{first, second}, time.Now())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("ORD-20260314103000")

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(aggregate.ID()))
	suite.Equal("ORD-20260314103000", loaded.Number())
	suite.Equal(order.Pending, loaded.Status())
	suite.InDelta(25.0, loaded.TotalAmount(), 1e-9)
	suite.Len(loaded.Items(), 2)
	suite.Equal("Ama Dossou", loaded.Client().Name())
	suite.Nil(loaded.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_Conflict() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder("ORD-20260314103000")))

	err := suite.repository.Add(ctx, suite.createTestOrder("ORD-20260314103000"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsPayment() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("ORD-20260314103000")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.Pay("pay-001", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, loaded.Status())
	suite.Equal("pay-001", loaded.PaymentReference())
	suite.NotNil(loaded.PaidAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithStatus_Succeeds() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("ORD-20260314103000")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.Pay("pay-001", time.Now()))
	suite.Require().NoError(suite.repository.UpdateWithStatus(ctx, aggregate, order.Pending))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithStatus_LostRace_Conflict() {
	ctx := context.Background()
	aggregate := suite.createTestOrder("ORD-20260314103000")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Another writer already paid the order.
	winner, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(winner.Pay("pay-001", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, winner))

	suite.Require().NoError(aggregate.Pay("pay-002", time.Now()))
	err = suite.repository.UpdateWithStatus(ctx, aggregate, order.Pending)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPaidUnassigned() {
	ctx := context.Background()

	paid := suite.createTestOrder("ORD-20260314103000")
	suite.Require().NoError(paid.Pay("pay-001", time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, paid))

	pending := suite.createTestOrder("ORD-20260314103001")
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	assigned := suite.createTestOrder("ORD-20260314103002")
	suite.Require().NoError(assigned.Pay("pay-002", time.Now()))
	suite.Require().NoError(assigned.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, assigned))

	unassigned, err := suite.repository.GetAllPaidUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(unassigned, 1)
	suite.True(unassigned[0].ID().IsEqual(paid.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAssignedToCourier() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	mine := suite.createTestOrder("ORD-20260314103000")
	suite.Require().NoError(mine.Pay("pay-001", time.Now()))
	suite.Require().NoError(mine.Assign(courierID))
	suite.Require().NoError(suite.repository.Add(ctx, mine))

	other := suite.createTestOrder("ORD-20260314103001")
	suite.Require().NoError(other.Pay("pay-002", time.Now()))
	suite.Require().NoError(other.Assign(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	done := suite.createTestOrder("ORD-20260314103002")
	suite.Require().NoError(done.Pay("pay-003", time.Now()))
	suite.Require().NoError(done.Assign(courierID))
	suite.Require().NoError(done.Advance(order.InDelivery, time.Now()))
	suite.Require().NoError(done.Advance(order.Delivered, time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, done))

	workload, err := suite.repository.GetAssignedToCourier(ctx, courierID)
	suite.Require().NoError(err)
	suite.Require().Len(workload, 1)
	suite.True(workload[0].ID().IsEqual(mine.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
