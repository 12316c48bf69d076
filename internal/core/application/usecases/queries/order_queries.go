package queries

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetOrderQueryIsNotConstructed   = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")
	ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")
)

// OrderView is an order together with the customer and product it references.
// Customer and Product are nil when the reference is absent.
type OrderView struct {
	Order    *order.Order
	Customer *customer.Customer
	Product  *product.Product
}

// GetOrderQuery looks up one order by transaction id.
type GetOrderQuery struct {
	id    int64
	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id int64) GetOrderQuery {
	return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetOrderQuery) ID() int64 {
	return q.id
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ListOrdersQuery returns every order ordered by transaction id.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// GetOrderQueryHandler reads an order with its references, or returns
// errs.ObjectNotFoundError.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orders, err := queryAll(ctx, h.db, scanOrder,
		`SELECT `+orderColumns+` FROM orders WHERE transaction_id = ?`, query.ID())
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.ID())
	}

	views, err := withReferences(ctx, h.db, orders)
	if err != nil {
		return OrderView{}, err
	}

	return views[0], nil
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := queryAll(ctx, h.db, scanOrder, `SELECT `+orderColumns+` FROM orders ORDER BY transaction_id`)
	if err != nil {
		return nil, err
	}

	return withReferences(ctx, h.db, orders)
}

// withReferences loads the referenced customers and products with one query
// each and attaches them to the orders.
func withReferences(ctx context.Context, db *gorm.DB, orders []*order.Order) ([]OrderView, error) {
	customerIDs := make([]int64, 0, len(orders))
	productIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		if id, ok := o.CustomerID().Get(); ok {
			customerIDs = append(customerIDs, id)
		}
		if id, ok := o.ProductID().Get(); ok {
			productIDs = append(productIDs, id)
		}
	}

	customers := make(map[int64]*customer.Customer)
	if len(customerIDs) > 0 {
		found, err := queryAll(ctx, db, scanCustomer,
			`SELECT `+customerColumns+` FROM customers WHERE customer_id IN ?`, customerIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range found {
			customers[c.ID()] = c
		}
	}

	products := make(map[int64]*product.Product)
	if len(productIDs) > 0 {
		found, err := queryAll(ctx, db, scanProduct,
			`SELECT `+productColumns+` FROM products WHERE product_id IN ?`, productIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range found {
			products[p.ID()] = p
		}
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view := OrderView{Order: o}
		if id, ok := o.CustomerID().Get(); ok {
			view.Customer = customers[id]
		}
		if id, ok := o.ProductID().Get(); ok {
			view.Product = products[id]
		}
		views = append(views, view)
	}

	return views, nil
}
