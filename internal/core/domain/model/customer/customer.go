package customer

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer was not created
	// through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrIDAlreadyAssigned is returned when the store tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("customer ID is already assigned")
)

// Column limits shared with the customers table.
const (
	MaxNameLength              = 100
	MaxEmailLength             = 255
	MaxPostalCodeLength        = 20
	MaxPhoneNumberLength       = 30
	MaxMembershipStatusLength  = 50
	MaxPreferredCategoryLength = 100
	MinAge                     = 0
	MaxAge                     = 150
)

// Details holds every mutable attribute of a customer. All attributes are
// optional; absent values are stored as NULL.
type Details struct {
	FirstName         kernel.Optional[string]
	LastName          kernel.Optional[string]
	Email             kernel.Optional[string]
	Age               kernel.Optional[int]
	Gender            kernel.Optional[string]
	PostalCode        kernel.Optional[string]
	PhoneNumber       kernel.Optional[string]
	MembershipStatus  kernel.Optional[string]
	JoinDate          kernel.Optional[kernel.Date]
	LastPurchaseDate  kernel.Optional[kernel.Date]
	TotalSpending     kernel.Optional[decimal.Decimal]
	AverageOrderValue kernel.Optional[decimal.Decimal]
	Frequency         kernel.Optional[int]
	PreferredCategory kernel.Optional[string]
	Churned           kernel.Optional[bool]
}

// WithDefaults fills the create-time defaults. A field is only replaced when
// absent: an explicit zero or false is kept.
//
//   - JoinDate: today
//   - TotalSpending: 0
//   - Frequency: 0
//   - Churned: false
func (d Details) WithDefaults(today kernel.Date) Details {
	d.JoinDate = d.JoinDate.Or(today)
	d.TotalSpending = d.TotalSpending.Or(decimal.Zero)
	d.Frequency = d.Frequency.Or(0)
	d.Churned = d.Churned.Or(false)
	return d
}

// Validate checks the structural rules of the attributes and reports every
// violation at once.
func (d Details) Validate() error {
	return errors.Join(
		kernel.MaxLength("firstName", d.FirstName, MaxNameLength),
		kernel.MaxLength("lastName", d.LastName, MaxNameLength),
		kernel.MaxLength("email", d.Email, MaxEmailLength),
		kernel.IntInRange("age", d.Age, MinAge, MaxAge),
		kernel.ExactLength("gender", d.Gender, 1),
		kernel.MaxLength("postalCode", d.PostalCode, MaxPostalCodeLength),
		kernel.MaxLength("phoneNumber", d.PhoneNumber, MaxPhoneNumberLength),
		kernel.MaxLength("membershipStatus", d.MembershipStatus, MaxMembershipStatusLength),
		kernel.MonetaryAmount("totalSpending", d.TotalSpending),
		kernel.MonetaryAmount("averageOrderValue", d.AverageOrderValue),
		validateFrequency(d.Frequency),
		kernel.MaxLength("preferredCategory", d.PreferredCategory, MaxPreferredCategoryLength),
	)
}

func validateFrequency(frequency kernel.Optional[int]) error {
	if f, ok := frequency.Get(); ok && f < 0 {
		return errs.NewValueIsInvalidErrorWithCause("frequency", fmt.Errorf("%d is negative", f))
	}
	return nil
}

// Customer is the aggregate root for a bakery customer. Its identity is assigned
// by the store on insert; version tracks persisted modifications.
type Customer struct {
	id      int64
	version int
	details Details

	isConstructed bool
}

// NewCustomer applies the create defaults to details, validates them and
// returns a customer that has not been persisted yet.
func NewCustomer(details Details, today kernel.Date) (*Customer, error) {
	details = details.WithDefaults(today)
	if err := details.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		details:       details,
		isConstructed: true,
	}, nil
}

// RestoreCustomer rebuilds a persisted customer without applying defaults.
func RestoreCustomer(id int64, version int, details Details) *Customer {
	return &Customer{
		id:            id,
		version:       version,
		details:       details,
		isConstructed: true,
	}
}

// Validate ensures the customer was built through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id != 0 && c.id == other.id
}

func (c *Customer) ID() int64 {
	return c.id
}

func (c *Customer) Version() int {
	return c.version
}

func (c *Customer) Details() Details {
	return c.details
}

func (c *Customer) Email() kernel.Optional[string] {
	return c.details.Email
}

// AssignID records the identity generated by the store on insert.
func (c *Customer) AssignID(id int64) error {
	if c.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

// IncrementVersion is called by the store after a successful update.
func (c *Customer) IncrementVersion() {
	c.version++
}

// Replace overwrites every attribute with details. Defaults are not applied:
// an absent field becomes NULL.
func (c *Customer) Replace(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}
