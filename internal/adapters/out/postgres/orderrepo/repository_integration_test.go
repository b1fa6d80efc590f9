package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID().String(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal(original.ClientPhone().String(), retrieved.ClientPhone().String())
	suite.Equal(original.Delivery().ZoneName(), retrieved.Delivery().ZoneName())
	suite.True(original.Delivery().ZoneCost().IsEqual(retrieved.Delivery().ZoneCost()))
	suite.True(original.Total().IsEqual(retrieved.Total()))
	suite.Equal(order.Issued, retrieved.Status())
	suite.Nil(retrieved.Driver())
	suite.Len(retrieved.Items(), len(original.Items()))
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignDriver_PersistsAndBumpsVersion() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverPhone, err := kernel.NewPhone("5491160000000")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Assign(driverPhone, time.Now().UTC()))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Dispatched, retrieved.Status())
	suite.Require().NotNil(retrieved.Driver())
	suite.Equal(driverPhone.String(), retrieved.Driver().String())
	suite.Equal(2, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First writer wins and bumps the stored version.
	driverPhone, err := kernel.NewPhone("5491160000000")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Assign(driverPhone, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// A second writer still holding version 1 must be rejected.
	stale, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(stale.Cancel(time.Now().UTC()))

	staleCopy, err := order.RestoreOrder(
		stale.ID(), stale.ClientPhone(), stale.Delivery(), stale.Items(),
		stale.PaymentMethod(), stale.Notes(), stale.Total(), stale.Status(),
		nil, stale.CreatedAt(), stale.UpdatedAt(), 1,
	)
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, staleCopy)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	suite.assertOrderCount(0)

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(0), itemCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Delete(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInIssuedStatus_ReturnsOnlyIssuedOldestFirst() {
	ctx := context.Background()

	first := suite.createTestOrderAt(time.Now().UTC().Add(-2 * time.Hour))
	second := suite.createTestOrderAt(time.Now().UTC().Add(-1 * time.Hour))
	dispatched := suite.createTestOrderAt(time.Now().UTC())

	driverPhone, err := kernel.NewPhone("5491160000000")
	suite.Require().NoError(err)
	suite.Require().NoError(dispatched.Assign(driverPhone, time.Now().UTC()))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, dispatched))

	issued, err := suite.repository.GetAllInIssuedStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(issued, 2)
	suite.True(first.ID().IsEqual(issued[0].ID()))
	suite.True(second.ID().IsEqual(issued[1].ID()))

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic issued order with one line item.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderAt(time.Now().UTC())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderAt(createdAt time.Time) *order.Order {
	clientPhone, err := kernel.NewPhone("5491155550000")
	suite.Require().NoError(err)

	zoneCost, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)

	delivery, err := order.NewDeliveryTarget("Ana", "Av. Siempre Viva 742", kernel.NewUUID(), "Centro", zoneCost)
	suite.Require().NoError(err)

	quantity, err := kernel.NewQuantity(decimal.NewFromInt(2))
	suite.Require().NoError(err)

	unitPrice, err := kernel.MoneyFromString("45.00")
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), quantity, unitPrice)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), clientPhone, delivery, []order.Item{item},
		order.Cash, "", createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
