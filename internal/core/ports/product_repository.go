package ports

import (
	"context"

	"bakery/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add inserts a new product and assigns the store-generated id to it.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update writes every attribute of an existing product, guarded by its version.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// Delete removes a product. The store cascades the delete to its orders.
	// Returns errs.ObjectNotFoundError when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}

// ProductCache is notified when a stored product changes so cached reads can
// be dropped.
type ProductCache interface {
	Invalidate(ctx context.Context, id int64)
}

// ProductReader looks up a single product for the read side. The product
// cache implements it in front of the repository.
type ProductReader interface {
	Get(ctx context.Context, id int64) (*product.Product, error)
}
