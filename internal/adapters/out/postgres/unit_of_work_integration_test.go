package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgresadapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/accountrepo"
	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite verifies that the checkout write set is
// atomic: either all writes of a transaction land or none do.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgresadapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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
		&cartrepo.CartItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&accountrepo.AccountDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE cart_items, order_items, orders, products, accounts").Error)
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	location, err := kernel.NewGeoPoint(6.3703, 2.3912)
	suite.Require().NoError(err)

	client, err := order.NewClient("Ama Dossou", "ama@example.com", "+22997000001",
		"12 Rue des Cheminots, Cotonou", location)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, 10)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), "ORD-20260314103000", client,
		[]order.Item{item}, time.Now())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCartRow(sessionID string) *cart.Item {
	row, err := cart.NewItem(kernel.NewUUID(), sessionID, kernel.NewUUID(), 2, time.Now())
	suite.Require().NoError(err)
	return row
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsCheckoutWriteSet() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.CartRepository().Upsert(ctx, suite.createTestCartRow("session-1")))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CartRepository().Clear(ctx, "session-1"))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()

	loaded, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("ORD-20260314103000", loaded.Number())

	rows, err := verify.CartRepository().GetBySession(ctx, "session-1")
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsCheckoutWriteSet() {
	ctx := context.Background()
	aggregate := suite.createTestOrder()

	seed := suite.factory.Create()
	suite.Require().NoError(seed.CartRepository().Upsert(ctx, suite.createTestCartRow("session-1")))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.CartRepository().Clear(ctx, "session-1"))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()

	_, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	rows, err := verify.CartRepository().GetBySession(ctx, "session-1")
	suite.Require().NoError(err)
	suite.Len(rows, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WorkWithoutTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.CartRepository().Upsert(ctx, suite.createTestCartRow("session-1")))

	rows, err := uow.CartRepository().GetBySession(ctx, "session-1")
	suite.Require().NoError(err)
	suite.Len(rows, 1)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
