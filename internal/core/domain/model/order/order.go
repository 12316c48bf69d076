package order

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factories. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDAlreadyAssigned is returned when the store tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("order transaction ID is already assigned")

	// ErrProductMismatch is returned when the product handed to NewOrder is not
	// the one the order references.
	ErrProductMismatch = errors.New("product does not match the order's product reference")
)

const (
	MaxPaymentMethodLength = 50
	MaxChannelLength       = 50
)

// Details holds the attributes of an order other than its identity and status.
type Details struct {
	CustomerID     kernel.Optional[int64]
	ProductID      kernel.Optional[int64]
	OrderDate      kernel.Optional[kernel.Date]
	OrderTime      kernel.Optional[kernel.TimeOfDay]
	Quantity       kernel.Optional[int]
	Price          kernel.Optional[decimal.Decimal]
	PaymentMethod  kernel.Optional[string]
	Channel        kernel.Optional[string]
	StoreID        kernel.Optional[int]
	PromotionID    kernel.Optional[int]
	DiscountAmount kernel.Optional[decimal.Decimal]
}

// Validate checks the structural rules shared by creation and override.
func (d Details) Validate() error {
	return errors.Join(
		kernel.PositiveID("customerId", d.CustomerID),
		kernel.PositiveID("productId", d.ProductID),
		kernel.MonetaryAmount("price", d.Price),
		kernel.MonetaryAmount("discountAmount", d.DiscountAmount),
		kernel.MaxLength("paymentMethod", d.PaymentMethod, MaxPaymentMethodLength),
		kernel.MaxLength("channel", d.Channel, MaxChannelLength),
	)
}

// validateForCreate adds the rules a new order must satisfy on top of Validate.
func (d Details) validateForCreate() error {
	quantity, ok := d.Quantity.Get()
	if !ok {
		return errors.Join(d.Validate(), errs.NewValueIsRequiredError("quantity"))
	}
	if quantity <= 0 {
		return errors.Join(
			d.Validate(),
			errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)),
		)
	}
	return d.Validate()
}

// withDefaults fills the date and time from now and the discount with zero.
func (d Details) withDefaults(now time.Time) Details {
	d.OrderDate = d.OrderDate.Or(kernel.DateOf(now))
	d.OrderTime = d.OrderTime.Or(kernel.TimeOfDayOf(now))
	d.DiscountAmount = d.DiscountAmount.Or(decimal.Zero)
	return d
}

// derivePrice sets price = unitPrice × quantity when the price is absent or zero.
// Without a product, a unit price or a quantity the price stays as supplied.
func (d Details) derivePrice(p *product.Product) Details {
	if price, ok := d.Price.Get(); ok && !price.IsZero() {
		return d
	}
	if p == nil {
		return d
	}
	unitPrice, ok := p.UnitPrice().Get()
	if !ok {
		return d
	}
	quantity, ok := d.Quantity.Get()
	if !ok {
		return d
	}
	d.Price = kernel.Some(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
	return d
}

// Order represents a sale of a product to a customer. It is the aggregate root
// that owns the order status state machine.
//
// Order follows these invariants:
//   - Status is always one of Pending, Completed, Cancelled
//   - Completed and Cancelled are terminal for lifecycle transitions
//   - Price is derived once at creation and never recomputed
type Order struct {
	id      int64
	version int
	details Details
	status  Status

	isConstructed bool
}

// NewOrder validates details and creates an unsaved order.
//
// Parameters:
//   - details: attributes supplied by the caller; quantity is required and positive
//   - status: the supplied status, Pending when absent
//   - p: the referenced product, nil when the order references none
//   - now: the creation moment, used for the date and time defaults
//
// When the price is absent or zero and p carries a unit price the price
// becomes unitPrice × quantity. A derived price too large to store is a
// validation error.
func NewOrder(details Details, status kernel.Optional[Status], p *product.Product, now time.Time) (*Order, error) {
	s := status.OrElse(Pending)
	if err := errors.Join(details.validateForCreate(), s.Validate()); err != nil {
		return nil, err
	}

	if p != nil {
		productID, ok := details.ProductID.Get()
		if !ok || productID != p.ID() {
			return nil, ErrProductMismatch
		}
	}

	details = details.withDefaults(now).derivePrice(p)
	if err := kernel.MonetaryAmount("price", details.Price); err != nil {
		return nil, err
	}

	return &Order{
		details:       details,
		status:        s,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds a persisted order. Stored data is trusted and no
// defaults or derivations run.
func RestoreOrder(id int64, version int, details Details, status Status) *Order {
	return &Order{
		id:            id,
		version:       version,
		details:       details,
		status:        status,
		isConstructed: true,
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their transaction IDs.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the transaction id, zero until the order is persisted.
func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CustomerID() kernel.Optional[int64] {
	return o.details.CustomerID
}

func (o *Order) ProductID() kernel.Optional[int64] {
	return o.details.ProductID
}

func (o *Order) Price() kernel.Optional[decimal.Decimal] {
	return o.details.Price
}

// AssignID records the transaction id generated by the store on insert.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("transactionId", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) IncrementVersion() {
	o.version++
}

// Complete moves a pending order to Completed. No other field changes.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves a pending order to Cancelled. No other field changes.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Override is the administrative correction path. It replaces every attribute
// and the status verbatim: the transition table is not consulted and the price
// is not derived. The status must still be a valid one.
func (o *Order) Override(details Details, status Status) error {
	if err := errors.Join(details.Validate(), status.Validate()); err != nil {
		return err
	}

	o.details = details
	o.status = status
	return nil
}
