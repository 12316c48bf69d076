package product

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrIDAlreadyAssigned is returned when the store tries to assign an identity twice.
	ErrIDAlreadyAssigned = errors.New("product ID is already assigned")
)

const (
	MaxNameLength     = 255
	MaxCategoryLength = 100
)

// Details holds every mutable attribute of a product.
type Details struct {
	Name           kernel.Optional[string]
	Category       kernel.Optional[string]
	Ingredients    kernel.Optional[string]
	UnitPrice      kernel.Optional[decimal.Decimal]
	UnitCost       kernel.Optional[decimal.Decimal]
	Seasonal       kernel.Optional[bool]
	Active         kernel.Optional[bool]
	IntroducedDate kernel.Optional[kernel.Date]
}

// WithDefaults fills active = true, seasonal = false and introduced date =
// today where those are absent.
func (d Details) WithDefaults(today kernel.Date) Details {
	d.Active = d.Active.Or(true)
	d.Seasonal = d.Seasonal.Or(false)
	d.IntroducedDate = d.IntroducedDate.Or(today)
	return d
}

func (d Details) Validate() error {
	return errors.Join(
		kernel.MaxLength("productName", d.Name, MaxNameLength),
		kernel.MaxLength("category", d.Category, MaxCategoryLength),
		kernel.MonetaryAmount("price", d.UnitPrice),
		kernel.MonetaryAmount("cost", d.UnitCost),
	)
}

// Product is the aggregate root for an item the bakery sells.
type Product struct {
	id      int64
	version int
	details Details

	isConstructed bool
}

// NewProduct applies the create defaults, validates and returns an unsaved product.
func NewProduct(details Details, today kernel.Date) (*Product, error) {
	details = details.WithDefaults(today)
	if err := details.Validate(); err != nil {
		return nil, err
	}

	return &Product{
		details:       details,
		isConstructed: true,
	}, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(id int64, version int, details Details) *Product {
	return &Product{
		id:            id,
		version:       version,
		details:       details,
		isConstructed: true,
	}
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id != 0 && p.id == other.id
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Version() int {
	return p.version
}

func (p *Product) Details() Details {
	return p.details
}

// UnitPrice is the current list price, absent when the product was never priced.
func (p *Product) UnitPrice() kernel.Optional[decimal.Decimal] {
	return p.details.UnitPrice
}

func (p *Product) AssignID(id int64) error {
	if p.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) IncrementVersion() {
	p.version++
}

// Replace overwrites every attribute with details, without defaults.
func (p *Product) Replace(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	p.details = details
	return nil
}
