package cmd

import (
	"log/slog"

	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/adapters/out/postgres/productrepo"
	"bakery/internal/adapters/out/productcache"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// productCache is the read-through cache in front of the product store.
type productCache interface {
	ports.ProductReader
	ports.ProductCache
}

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	products   productCache
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires the application. A nil rdb disables product caching.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, rdb *redis.Client, logger *slog.Logger) CompositionRoot {
	store := productrepo.NewGormProductRepository(gormDB)

	var products productCache = productcache.NewNop(store)
	if rdb != nil {
		products = productcache.NewRedisProductCache(store, rdb, cfg.ProductCacheTTL, logger)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		products:   products,
		clock:      kernel.SystemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoW() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	h := commands.NewCreateCustomerCommandHandler(c.uow(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() *commands.UpdateCustomerCommandHandler {
	h := commands.NewUpdateCustomerCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	h := commands.NewCreateProductCommandHandler(c.productUoW(), c.clock, c.products)
	return &h
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() *commands.UpdateProductCommandHandler {
	h := commands.NewUpdateProductCommandHandler(c.productUoW(), c.products)
	return &h
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() *commands.DeleteProductCommandHandler {
	h := commands.NewDeleteProductCommandHandler(c.productUoW(), c.products)
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.uow(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() *commands.TransitionOrderCommandHandler {
	h := commands.NewTransitionOrderCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateOverrideOrderCommandHandler() *commands.OverrideOrderCommandHandler {
	h := commands.NewOverrideOrderCommandHandler(c.uow())
	return &h
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.products)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateServer builds the HTTP server over every use case.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateCustomer: c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer: c.CreateUpdateCustomerCommandHandler(),
		GetCustomer:    c.CreateGetCustomerQueryHandler(),
		ListCustomers:  c.CreateListCustomersQueryHandler(),

		CreateProduct: c.CreateCreateProductCommandHandler(),
		UpdateProduct: c.CreateUpdateProductCommandHandler(),
		DeleteProduct: c.CreateDeleteProductCommandHandler(),
		GetProduct:    c.CreateGetProductQueryHandler(),
		ListProducts:  c.CreateListProductsQueryHandler(),

		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		TransitionOrder: c.CreateTransitionOrderCommandHandler(),
		OverrideOrder:   c.CreateOverrideOrderCommandHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
	})
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
