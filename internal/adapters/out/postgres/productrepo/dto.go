// Package productrepo persists product aggregates in the products table.
package productrepo

import (
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the row shape of the products table.
type ProductDTO struct {
	ID             int64            `gorm:"column:product_id;primaryKey"`
	Version        int              `gorm:"column:version"`
	Name           *string          `gorm:"column:product_name"`
	Category       *string          `gorm:"column:category"`
	Ingredients    *string          `gorm:"column:ingredients"`
	Price          *decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	Cost           *decimal.Decimal `gorm:"column:cost;type:numeric(10,2)"`
	Seasonal       *bool            `gorm:"column:seasonal"`
	Active         *bool            `gorm:"column:active"`
	IntroducedDate *kernel.Date     `gorm:"column:introduced_date;type:date"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	d := p.Details()
	return ProductDTO{
		ID:             p.ID(),
		Version:        p.Version(),
		Name:           d.Name.Ptr(),
		Category:       d.Category.Ptr(),
		Ingredients:    d.Ingredients.Ptr(),
		Price:          d.UnitPrice.Ptr(),
		Cost:           d.UnitCost.Ptr(),
		Seasonal:       d.Seasonal.Ptr(),
		Active:         d.Active.Ptr(),
		IntroducedDate: d.IntroducedDate.Ptr(),
	}
}

// ToDomain rebuilds the aggregate from a row.
func ToDomain(dto ProductDTO) *product.Product {
	return product.RestoreProduct(dto.ID, dto.Version, product.Details{
		Name:           kernel.FromPtr(dto.Name),
		Category:       kernel.FromPtr(dto.Category),
		Ingredients:    kernel.FromPtr(dto.Ingredients),
		UnitPrice:      kernel.FromPtr(dto.Price),
		UnitCost:       kernel.FromPtr(dto.Cost),
		Seasonal:       kernel.FromPtr(dto.Seasonal),
		Active:         kernel.FromPtr(dto.Active),
		IntroducedDate: kernel.FromPtr(dto.IntroducedDate),
	})
}
