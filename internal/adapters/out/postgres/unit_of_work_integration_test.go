package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/pgtest"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var now = time.Date(2024, time.May, 10, 9, 15, 30, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite exercises the GORM Unit of Work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) newCustomer() *customer.Customer {
	c, err := customer.NewCustomer(customer.Details{
		FirstName: kernel.Some("Ana"),
		Email:     kernel.Some("ana@example.com"),
	}, kernel.DateOf(now))
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) newProduct() *product.Product {
	p, err := product.NewProduct(product.Details{
		Name:      kernel.Some("Croissant"),
		UnitPrice: kernel.Some(decimal.RequireFromString("3.10")),
	}, kernel.DateOf(now))
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) count(table string) int64 {
	var n int64
	suite.Require().NoError(suite.database.DB.Table(table).Count(&n).Error)
	return n
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.NoError(uow.Rollback(ctx), "rollback after commit does nothing")
	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAllRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer()
	p := suite.newProduct()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	o, err := order.NewOrder(order.Details{
		CustomerID: kernel.Some(c.ID()),
		ProductID:  kernel.Some(p.ID()),
		Quantity:   kernel.Some(2),
	}, kernel.None[order.Status](), p, now)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.count("customers"))
	suite.Equal(int64(1), suite.count("products"))
	suite.Equal(int64(1), suite.count("orders"))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("6.2", stored.Price().OrElse(decimal.Zero).String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.CustomerRepository().Add(ctx, suite.newCustomer()))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, suite.newProduct()))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Zero(suite.count("customers"))
	suite.Zero(suite.count("products"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFailedStatementAbortsTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.CustomerRepository().Add(ctx, suite.newCustomer()))
	err := uow.CustomerRepository().Add(ctx, suite.newCustomer())
	suite.ErrorIs(err, errs.ErrDuplicateValue)

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Zero(suite.count("customers"))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolationBetweenUnits() {
	ctx := context.Background()
	writer := suite.factory.Create()
	suite.Require().NoError(writer.Begin(ctx))
	defer func() { _ = writer.Rollback(ctx) }()

	p := suite.newProduct()
	suite.Require().NoError(writer.ProductRepository().Add(ctx, p))

	_, err := suite.factory.Create().ProductRepository().Get(ctx, p.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound, "uncommitted rows are invisible to other units")
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
