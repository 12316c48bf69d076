package queries

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetCustomerQueryIsNotConstructed   = errors.New("GetCustomerQuery must be created via NewGetCustomerQuery constructor")
	ErrListCustomersQueryIsNotConstructed = errors.New("ListCustomersQuery must be created via NewListCustomersQuery constructor")
)

// GetCustomerQuery looks up one customer by id.
type GetCustomerQuery struct {
	id    int64
	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(id int64) GetCustomerQuery {
	return GetCustomerQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetCustomerQuery) ID() int64 {
	return q.id
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// ListCustomersQuery returns every customer ordered by id.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// GetCustomerQueryHandler reads a customer, or returns errs.ObjectNotFoundError.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (*customer.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := queryAll(ctx, h.db, scanCustomer,
		`SELECT `+customerColumns+` FROM customers WHERE customer_id = ?`, query.ID())
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, errs.NewObjectNotFoundError("customer", query.ID())
	}

	return found[0], nil
}

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]*customer.Customer, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryAll(ctx, h.db, scanCustomer, `SELECT `+customerColumns+` FROM customers ORDER BY customer_id`)
}
