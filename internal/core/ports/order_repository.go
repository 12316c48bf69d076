package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts a new order and assigns the store-generated transaction id.
	// A dangling customer or product reference surfaces as errs.ReferenceNotFoundError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes every attribute and the status, guarded by the version.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by transaction id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
