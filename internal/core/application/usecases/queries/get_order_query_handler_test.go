package queries_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.AddressDTO{},
		&orderrepo.CreditCardDTO{},
	))

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_FullOrder_ReturnsAllFields() {
	ctx := context.Background()

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
	suite.Require().NoError(err)

	firstBook := kernel.NewUUID()
	secondBook := kernel.NewUUID()
	_, err = aggregate.AddBook(firstBook, 2, decimal.RequireFromString("9.99"))
	suite.Require().NoError(err)
	_, err = aggregate.AddBook(secondBook, 1, decimal.RequireFromString("4.00"))
	suite.Require().NoError(err)

	deliveryID := kernel.NewUUID()
	suite.Require().NoError(aggregate.AttachDelivery(deliveryID, decimal.RequireFromString("4.50")))

	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(aggregate.ID()))
	suite.True(result.UserID.IsEqual(aggregate.UserID()))
	suite.Equal(order.InProgress.String(), result.Status)
	suite.Require().NotNil(result.DeliveryID)
	suite.True(result.DeliveryID.IsEqual(deliveryID))
	suite.True(result.DeliveryPrice.Equal(decimal.RequireFromString("4.50")))
	suite.True(result.TotalPrice.Equal(decimal.RequireFromString("28.48")))
	suite.False(result.HasBillingAddress)
	suite.False(result.HasShippingAddress)
	suite.False(result.HasCreditCard)

	suite.Require().Len(result.Items, 2)
	itemsByBook := make(map[string]queries.GetOrderQueryItem, len(result.Items))
	for _, item := range result.Items {
		itemsByBook[item.BookID.String()] = item
	}

	first, ok := itemsByBook[firstBook.String()]
	suite.Require().True(ok)
	suite.Equal(2, first.Quantity)
	suite.True(first.UnitPrice.Equal(decimal.RequireFromString("9.99")))
	suite.True(first.LineTotal.Equal(decimal.RequireFromString("19.98")))

	second, ok := itemsByBook[secondBook.String()]
	suite.Require().True(ok)
	suite.Equal(1, second.Quantity)
	suite.True(second.LineTotal.Equal(decimal.RequireFromString("4.00")))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OrderWithoutDelivery_ReturnsNilDeliveryID() {
	ctx := context.Background()

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
	suite.Require().NoError(err)
	_, err = aggregate.AddBook(kernel.NewUUID(), 1, decimal.RequireFromString("9.99"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Nil(result.DeliveryID)
	suite.True(result.DeliveryPrice.IsZero())
	suite.True(result.TotalPrice.Equal(decimal.RequireFromString("9.99")))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ItemsOrderedByInsertion() {
	ctx := context.Background()

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
	suite.Require().NoError(err)

	books := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	for _, bookID := range books {
		_, err = aggregate.AddBook(bookID, 1, decimal.RequireFromString("5.00"))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	// Update rewrites the item rows; the read must still come back in
	// insertion order.
	suite.Require().NoError(suite.orderRepo.Update(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Items, 3)
	for i, bookID := range books {
		suite.True(result.Items[i].BookID.IsEqual(bookID))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_CheckoutDetails_ReportedAsPresence() {
	ctx := context.Background()

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Time{})
	suite.Require().NoError(err)

	street := "Main St"
	month, year := 11, 2028
	number := "4111111111111111"
	suite.Require().NoError(aggregate.ApplyUpdate(order.OrderUpdate{
		BillingAddress: &order.AddressUpdate{Street: &street},
		CreditCard: &order.CreditCardUpdate{
			Number:          &number,
			ExpirationMonth: &month,
			ExpirationYear:  &year,
		},
	}, true))
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(result.HasBillingAddress)
	suite.True(result.HasShippingAddress)
	suite.True(result.HasCreditCard)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_MissingOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
