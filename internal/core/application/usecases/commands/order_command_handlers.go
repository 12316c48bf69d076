package commands

import (
	"context"
	"fmt"

	"bakery/internal/core/application/registry"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
)

// CreatedOrder is the stored order together with the records it references.
// Customer and Product are nil when the order does not reference them.
type CreatedOrder struct {
	Order    *order.Order
	Customer *customer.Customer
	Product  *product.Product
}

// CreateOrderCommandHandler is the only way orders come into existence.
//
// The steps run in one transaction and nothing is written before all checks pass:
//  1. the customer reference, when set, must exist
//  2. the product reference, when set, must exist and is loaded
//  3. date, time, status and discount receive their defaults
//  4. an absent or zero price becomes unitPrice × quantity
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreatedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatedOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	reg := registry.New(customerRepo, uow.ProductRepository())

	details := cmd.Details()
	p, err := reg.ResolveOrderReferences(ctx, details.CustomerID, details.ProductID)
	if err != nil {
		return CreatedOrder{}, err
	}

	o, err := order.NewOrder(details, cmd.Status(), p, h.clock.Now())
	if err != nil {
		return CreatedOrder{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreatedOrder{}, err
	}

	result := CreatedOrder{Order: o, Product: p}
	if id, ok := o.CustomerID().Get(); ok {
		if result.Customer, err = customerRepo.Get(ctx, id); err != nil {
			return CreatedOrder{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedOrder{}, err
	}

	return result, nil
}

// TransitionOrderCommandHandler applies Complete or Cancel to a stored order.
// Only the status changes.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewTransitionOrderCommandHandler(uowFactory UoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	switch cmd.Target() {
	case order.Completed:
		err = o.Complete()
	case order.Cancelled:
		err = o.Cancel()
	default:
		err = fmt.Errorf("unsupported transition target %s", cmd.Target())
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// OverrideOrderCommandHandler is the administrative correction path. References
// are re-validated; the status is written as given and the price as supplied.
type OverrideOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewOverrideOrderCommandHandler(uowFactory UoWFactory) OverrideOrderCommandHandler {
	return OverrideOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *OverrideOrderCommandHandler) Handle(ctx context.Context, cmd OverrideOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	reg := registry.New(uow.CustomerRepository(), uow.ProductRepository())

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	details := cmd.Details()
	if _, err = reg.ResolveOrderReferences(ctx, details.CustomerID, details.ProductID); err != nil {
		return nil, err
	}

	if err = o.Override(details, cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
