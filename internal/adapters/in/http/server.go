package http

import (
	"context"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/generated/servers"
)

// Use case ports consumed by the server. The command and query handlers in
// internal/core/application satisfy them.
type (
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
	}
	UpdateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) (*customer.Customer, error)
	}
	GetCustomerHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (*customer.Customer, error)
	}
	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) ([]*customer.Customer, error)
	}

	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error)
	}
	UpdateProductHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*product.Product, error)
	}
	DeleteProductHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (*product.Product, error)
	}
	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) ([]*product.Product, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreatedOrder, error)
	}
	TransitionOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error)
	}
	OverrideOrderHandler interface {
		Handle(ctx context.Context, cmd commands.OverrideOrderCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
)

// Handlers groups every use case the HTTP API exposes.
type Handlers struct {
	CreateCustomer CreateCustomerHandler
	UpdateCustomer UpdateCustomerHandler
	GetCustomer    GetCustomerHandler
	ListCustomers  ListCustomersHandler

	CreateProduct CreateProductHandler
	UpdateProduct UpdateProductHandler
	DeleteProduct DeleteProductHandler
	GetProduct    GetProductHandler
	ListProducts  ListProductsHandler

	CreateOrder     CreateOrderHandler
	TransitionOrder TransitionOrderHandler
	OverrideOrder   OverrideOrderHandler
	GetOrder        GetOrderHandler
	ListOrders      ListOrdersHandler
}

// Server implements servers.ServerInterface.
// It translates between the HTTP contract and the application use cases;
// failures are returned to echo and rendered by NewErrorHandler.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}
