package commands

import (
	"errors"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand(customer.Details{
//	    FirstName: kernel.Some("Mariam"),
//	    Email:     kernel.Some("mariam@example.com"),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	details customer.Details

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand validates the structural rules of details.
func NewCreateCustomerCommand(details customer.Details) (CreateCustomerCommand, error) {
	if err := details.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Details() customer.Details {
	return c.details
}
