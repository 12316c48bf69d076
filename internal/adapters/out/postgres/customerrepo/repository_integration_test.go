package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/adapters/out/postgres/customerrepo"
	"bakery/internal/adapters/out/postgres/pgtest"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *customerrepo.GormCustomerRepository
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.database = database
	suite.Require().NoError(err)
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
	suite.repository = customerrepo.NewGormCustomerRepository(suite.database.DB)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *CustomerRepositoryIntegrationTestSuite) newCustomer(email string) *customer.Customer {
	c, err := customer.NewCustomer(customer.Details{
		FirstName:     kernel.Some("Ana"),
		LastName:      kernel.Some("Lopez"),
		Email:         kernel.Some(email),
		Age:           kernel.Some(34),
		Gender:        kernel.Some("F"),
		TotalSpending: kernel.Some(decimal.RequireFromString("120.50")),
	}, kernel.NewDate(2024, time.May, 10))
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_AssignsIDAndRoundTrips() {
	ctx := context.Background()
	c := suite.newCustomer("ana@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, c))
	suite.Equal(int64(1), c.ID())

	stored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(c))
	suite.Equal(0, stored.Version())

	d := stored.Details()
	suite.Equal(kernel.Some("ana@example.com"), d.Email)
	suite.Equal(kernel.Some(34), d.Age)
	suite.Equal(kernel.Some(kernel.NewDate(2024, time.May, 10)), d.JoinDate)
	suite.True(d.TotalSpending.OrElse(decimal.Zero).Equal(decimal.RequireFromString("120.5")))
	suite.Equal(kernel.Some(false), d.Churned)
	suite.False(d.PhoneNumber.IsPresent())
	suite.False(d.LastPurchaseDate.IsPresent())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newCustomer("dup@example.com")))

	err := suite.repository.Add(ctx, suite.newCustomer("dup@example.com"))

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrDuplicateValue)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_AllowsSeveralCustomersWithoutEmail() {
	ctx := context.Background()
	for range 2 {
		c, err := customer.NewCustomer(customer.Details{FirstName: kernel.Some("Anon")}, kernel.NewDate(2024, 1, 1))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, c))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_ReplacesAllColumnsAndBumpsVersion() {
	ctx := context.Background()
	c := suite.newCustomer("ana@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	suite.Require().NoError(c.Replace(customer.Details{FirstName: kernel.Some("Anna")}))
	suite.Require().NoError(suite.repository.Update(ctx, c))
	suite.Equal(1, c.Version())

	stored, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal(1, stored.Version())
	suite.Equal(kernel.Some("Anna"), stored.Details().FirstName)
	suite.False(stored.Details().Email.IsPresent(), "absent fields are written as NULL")
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_StaleVersion() {
	ctx := context.Background()
	c := suite.newCustomer("ana@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	stale, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, c))

	err = suite.repository.Update(ctx, stale)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)
	suite.Equal(0, stale.Version())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_Missing() {
	ghost := customer.RestoreCustomer(99, 0, customer.Details{})

	err := suite.repository.Update(context.Background(), ghost)

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 42)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal(int64(42), notFound.ID)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestExistsAndEmailTaken() {
	ctx := context.Background()
	c := suite.newCustomer("ana@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, c))

	exists, err := suite.repository.Exists(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, c.ID()+1)
	suite.Require().NoError(err)
	suite.False(exists)

	taken, err := suite.repository.EmailTaken(ctx, "ana@example.com", kernel.None[int64]())
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repository.EmailTaken(ctx, "ana@example.com", kernel.Some(c.ID()))
	suite.Require().NoError(err)
	suite.False(taken, "a customer keeping its own email is not a conflict")

	taken, err = suite.repository.EmailTaken(ctx, "other@example.com", kernel.None[int64]())
	suite.Require().NoError(err)
	suite.False(taken)
}

func TestCustomerRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
