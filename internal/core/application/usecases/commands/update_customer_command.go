package commands

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand replaces every attribute of an existing customer.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	details    customer.Details

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID int64, details customer.Details) (UpdateCustomerCommand, error) {
	if err := errors.Join(validateID("customerId", customerID), details.Validate()); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() int64 {
	return c.customerID
}

func (c UpdateCustomerCommand) Details() customer.Details {
	return c.details
}

func validateID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
