package commands

import (
	"context"

	"bakery/internal/core/application/registry"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
)

// UpdateCustomerCommandHandler performs the full-record customer update.
// Keeping the customer's own email is allowed; taking another customer's is not.
type UpdateCustomerCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory UoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
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

	customerRepo := uow.CustomerRepository()
	reg := registry.New(customerRepo, uow.ProductRepository())

	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	details := cmd.Details()
	if err = reg.EnsureEmailAvailable(ctx, details.Email, kernel.Some(c.ID())); err != nil {
		return nil, err
	}

	if err = c.Replace(details); err != nil {
		return nil, err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
