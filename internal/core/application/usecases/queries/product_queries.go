package queries

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetProductQueryIsNotConstructed   = errors.New("GetProductQuery must be created via NewGetProductQuery constructor")
	ErrListProductsQueryIsNotConstructed = errors.New("ListProductsQuery must be created via NewListProductsQuery constructor")
)

// GetProductQuery looks up one product by id.
type GetProductQuery struct {
	id    int64
	guard guard.ConstructorGuard
}

func NewGetProductQuery(id int64) GetProductQuery {
	return GetProductQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetProductQuery) ID() int64 {
	return q.id
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ListProductsQuery returns every product ordered by id.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// GetProductQueryHandler reads through a ProductReader so single product
// lookups can be served from the cache.
type GetProductQueryHandler struct {
	reader ports.ProductReader
}

func NewGetProductQueryHandler(reader ports.ProductReader) GetProductQueryHandler {
	return GetProductQueryHandler{reader: reader}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.Get(ctx, query.ID())
}

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryAll(ctx, h.db, scanProduct, `SELECT `+productColumns+` FROM products ORDER BY product_id`)
}
