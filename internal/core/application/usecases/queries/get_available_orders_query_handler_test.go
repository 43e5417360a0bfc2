package queries_test

import (
	"context"
	"testing"
	"time"

	"parcelrelay/internal/adapters/out/postgres"
	"parcelrelay/internal/adapters/out/postgres/orderrepo"
	"parcelrelay/internal/adapters/out/postgres/parcelrepo"
	"parcelrelay/internal/core/application/usecases/queries"
	"parcelrelay/internal/core/domain/model/kernel"
	"parcelrelay/internal/core/domain/model/order"
	"parcelrelay/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAvailableOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
	handler   queries.GetAvailableOrdersQueryHandler
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &orderrepo.OrderDTO{}))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
	suite.handler = queries.NewGetAvailableOrdersQueryHandler(db)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels, orders").Error)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) seedShipment(claimed bool) (*parcel.Parcel, *order.Order) {
	ctx := context.Background()

	testParcel, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		4.2, parcel.TypeFragile, "glassware",
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), testParcel.ID(), kernel.NewUUID(), testParcel.Destination())
	suite.Require().NoError(err)
	if claimed {
		suite.Require().NoError(testOrder.Claim(kernel.NewUUID(), time.Now()))
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, testParcel))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	return testParcel, testOrder
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyUnclaimed() {
	ctx := context.Background()

	openParcel, openOrder := suite.seedShipment(false)
	suite.seedShipment(true)

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	suite.Equal(openOrder.ID(), result[0].OrderID)
	suite.Equal(openParcel.ID(), result[0].ParcelID)
	suite.Equal(openOrder.From(), result[0].FromAddressID)
	suite.Require().NotNil(result[0].ToAddressID)
	suite.True(result[0].ToAddressID.IsEqual(*openOrder.To()))
	suite.InDelta(4.2, result[0].Weight, 0.0001)
	suite.Equal(parcel.TypeFragile, result[0].ParcelType)
	suite.Equal("glassware", result[0].Description)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase() {
	ctx := context.Background()

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableOrdersQuery())
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetAvailableOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	ctx := context.Background()

	var query queries.GetAvailableOrdersQuery
	_, err := suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, queries.ErrGetAvailableOrdersQueryIsNotConstructed)
}

func TestGetAvailableOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableOrdersQueryHandlerTestSuite))
}
