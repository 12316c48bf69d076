// Package ports defines the persistence contracts of the bakery domain.
// Adapters implement them; application handlers depend only on these interfaces.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add inserts a new customer and assigns the store-generated id to it.
	// A taken email surfaces as errs.DuplicateValueError.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update writes every attribute of an existing customer, guarded by its version.
	// Returns errs.ObjectNotFoundError when the row is gone and
	// errs.ConcurrencyConflictError when it was modified since it was read.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// Exists reports whether a customer with id is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// EmailTaken reports whether any customer other than excludingID uses email.
	EmailTaken(ctx context.Context, email string, excludingID kernel.Optional[int64]) (bool, error)
}
