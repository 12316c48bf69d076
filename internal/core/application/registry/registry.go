// Package registry answers the existence and uniqueness questions the order
// lifecycle and the customer commands ask about stored customers and products.
//
// A Registry is bound to the repositories of one unit of work, so its answers
// reflect the state visible inside that transaction.
package registry

import (
	"context"
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

const (
	CustomerReference = "customer"
	ProductReference  = "product"
)

type Registry struct {
	customers ports.CustomerRepository
	products  ports.ProductRepository
}

func New(customers ports.CustomerRepository, products ports.ProductRepository) Registry {
	return Registry{
		customers: customers,
		products:  products,
	}
}

// CustomerExists reports whether the customer is stored.
func (r Registry) CustomerExists(ctx context.Context, id int64) (bool, error) {
	return r.customers.Exists(ctx, id)
}

// ProductLookup returns the stored product or errs.ObjectNotFoundError.
func (r Registry) ProductLookup(ctx context.Context, id int64) (*product.Product, error) {
	return r.products.Get(ctx, id)
}

// IsEmailTaken reports whether a customer other than excludingID uses email.
// Pass kernel.None on create and the customer's own id on update.
func (r Registry) IsEmailTaken(ctx context.Context, email string, excludingID kernel.Optional[int64]) (bool, error) {
	return r.customers.EmailTaken(ctx, email, excludingID)
}

// EnsureEmailAvailable turns a taken email into errs.DuplicateValueError.
// An absent email is never a duplicate.
func (r Registry) EnsureEmailAvailable(
	ctx context.Context,
	email kernel.Optional[string],
	excludingID kernel.Optional[int64],
) error {
	address, ok := email.Get()
	if !ok {
		return nil
	}

	taken, err := r.IsEmailTaken(ctx, address, excludingID)
	if err != nil {
		return err
	}
	if taken {
		return errs.NewDuplicateValueError("email", address)
	}
	return nil
}

// ResolveOrderReferences checks the customer and product an order points at.
// Each reference is only checked when set. The customer is checked first; the
// resolved product is returned for price derivation, nil when none is set.
func (r Registry) ResolveOrderReferences(
	ctx context.Context,
	customerID kernel.Optional[int64],
	productID kernel.Optional[int64],
) (*product.Product, error) {
	if id, ok := customerID.Get(); ok {
		exists, err := r.CustomerExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewReferenceNotFoundError(CustomerReference, id)
		}
	}

	id, ok := productID.Get()
	if !ok {
		return nil, nil //nolint:nilnil // no product referenced
	}

	p, err := r.ProductLookup(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewReferenceNotFoundErrorWithCause(ProductReference, id, err)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
