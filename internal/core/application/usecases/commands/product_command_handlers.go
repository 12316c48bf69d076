package commands

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/ports"
)

// CreateProductCommandHandler stores new products with active = true,
// seasonal = false and introduced date = today unless supplied. A cached miss
// for the new id is dropped after commit.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	clock      kernel.Clock
	cache      ports.ProductCache
}

func NewCreateProductCommandHandler(
	uowFactory ProductUoWFactory,
	clock kernel.Clock,
	cache ports.ProductCache,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		cache:      cache,
	}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(cmd.Details(), kernel.DateOf(h.clock.Now()))
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.Invalidate(ctx, p.ID())
	return p, nil
}

// UpdateProductCommandHandler performs the full-record product update. Stored
// order prices are not touched. The cached read of the product is dropped
// after commit.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
	cache      ports.ProductCache
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory, cache ports.ProductCache) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = p.Replace(cmd.Details()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.cache.Invalidate(ctx, p.ID())
	return p, nil
}

// DeleteProductCommandHandler removes products. The store cascades the delete
// to the product's orders.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	cache      ports.ProductCache
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory, cache ports.ProductCache) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.cache.Invalidate(ctx, cmd.ProductID())
	return nil
}
