package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewCompleteOrderCommand or NewCancelOrderCommand",
	)
	ErrOverrideOrderCommandIsNotConstructed = errors.New(
		"OverrideOrderCommand must be created via NewOverrideOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to record a new sale.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Details{
//	    ProductID: kernel.Some(int64(7)),
//	    Quantity:  kernel.Some(3),
//	}, kernel.None[order.Status]())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
//	// created.Order.Price() is the product's unit price × 3
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	details order.Details
	status  kernel.Optional[order.Status]

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the structural rules that do not need stored
// state: field formats and, when supplied, the status value.
func NewCreateOrderCommand(details order.Details, status kernel.Optional[order.Status]) (CreateOrderCommand, error) {
	var statusErr error
	if s, ok := status.Get(); ok {
		statusErr = s.Validate()
	}
	if err := errors.Join(details.Validate(), statusErr); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		details: details,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c CreateOrderCommand) Status() kernel.Optional[order.Status] {
	return c.status
}

// TransitionOrderCommand asks for one lifecycle transition of an order.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	target  order.Status

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand requests Pending -> Completed.
func NewCompleteOrderCommand(orderID int64) (TransitionOrderCommand, error) {
	return newTransitionOrderCommand(orderID, order.Completed)
}

// NewCancelOrderCommand requests Pending -> Cancelled.
func NewCancelOrderCommand(orderID int64) (TransitionOrderCommand, error) {
	return newTransitionOrderCommand(orderID, order.Cancelled)
}

func newTransitionOrderCommand(orderID int64, target order.Status) (TransitionOrderCommand, error) {
	if err := validateID("orderId", orderID); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// OverrideOrderCommand is the administrative full replacement of an order.
type OverrideOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	details order.Details
	status  order.Status

	guard guard.ConstructorGuard
}

// NewOverrideOrderCommand requires a valid status: an override may set any of
// the three, but never an unknown one.
func NewOverrideOrderCommand(orderID int64, details order.Details, status kernel.Optional[order.Status]) (OverrideOrderCommand, error) {
	statusErr := error(errs.NewValueIsRequiredError("status"))
	s, ok := status.Get()
	if ok {
		statusErr = s.Validate()
	}

	if err := errors.Join(validateID("orderId", orderID), details.Validate(), statusErr); err != nil {
		return OverrideOrderCommand{}, err
	}

	return OverrideOrderCommand{
		orderID: orderID,
		details: details,
		status:  s,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideOrderCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderCommandIsNotConstructed)
}

func (c OverrideOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c OverrideOrderCommand) Details() order.Details {
	return c.details
}

func (c OverrideOrderCommand) Status() order.Status {
	return c.status
}
