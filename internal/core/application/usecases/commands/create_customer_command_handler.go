package commands

import (
	"context"

	"bakery/internal/core/application/registry"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
)

// CreateCustomerCommandHandler registers customers. The email must not be used
// by any other customer; join date, spending, frequency and churn get their
// defaults when absent.
type CreateCustomerCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCreateCustomerCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the stored customer with its assigned id.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
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

	details := cmd.Details()
	if err := reg.EnsureEmailAvailable(ctx, details.Email, kernel.None[int64]()); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(details, kernel.DateOf(h.clock.Now()))
	if err != nil {
		return nil, err
	}

	if err = customerRepo.Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
