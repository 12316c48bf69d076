package commands

import (
	"errors"

	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrDeleteProductCommandIsNotConstructed = errors.New(
		"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
	)
)

// CreateProductCommand represents a request to add a product to the catalogue.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	details product.Details

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(details product.Details) (CreateProductCommand, error) {
	if err := details.Validate(); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Details() product.Details {
	return c.details
}

// UpdateProductCommand replaces every attribute of an existing product.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	details   product.Details

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(productID int64, details product.Details) (UpdateProductCommand, error) {
	if err := errors.Join(validateID("productId", productID), details.Validate()); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

func (c UpdateProductCommand) Details() product.Details {
	return c.details
}

// DeleteProductCommand removes a product unconditionally.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	if err := validateID("productId", productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}
