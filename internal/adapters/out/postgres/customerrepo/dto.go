// Package customerrepo persists customer aggregates in the customers table.
package customerrepo

import (
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CustomerDTO is the row shape of the customers table. Every attribute is
// nullable, so absent values map to nil pointers.
type CustomerDTO struct {
	ID                int64            `gorm:"column:customer_id;primaryKey"`
	Version           int              `gorm:"column:version"`
	FirstName         *string          `gorm:"column:first_name"`
	LastName          *string          `gorm:"column:last_name"`
	Email             *string          `gorm:"column:email"`
	Age               *int             `gorm:"column:age"`
	Gender            *string          `gorm:"column:gender"`
	PostalCode        *string          `gorm:"column:postal_code"`
	PhoneNumber       *string          `gorm:"column:phone_number"`
	MembershipStatus  *string          `gorm:"column:membership_status"`
	JoinDate          *kernel.Date     `gorm:"column:join_date;type:date"`
	LastPurchaseDate  *kernel.Date     `gorm:"column:last_purchase_date;type:date"`
	TotalSpending     *decimal.Decimal `gorm:"column:total_spending;type:numeric(10,2)"`
	AverageOrderValue *decimal.Decimal `gorm:"column:average_order_value;type:numeric(10,2)"`
	Frequency         *int             `gorm:"column:frequency"`
	PreferredCategory *string          `gorm:"column:preferred_category"`
	Churned           *bool            `gorm:"column:churned"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	d := c.Details()
	return CustomerDTO{
		ID:                c.ID(),
		Version:           c.Version(),
		FirstName:         d.FirstName.Ptr(),
		LastName:          d.LastName.Ptr(),
		Email:             d.Email.Ptr(),
		Age:               d.Age.Ptr(),
		Gender:            d.Gender.Ptr(),
		PostalCode:        d.PostalCode.Ptr(),
		PhoneNumber:       d.PhoneNumber.Ptr(),
		MembershipStatus:  d.MembershipStatus.Ptr(),
		JoinDate:          d.JoinDate.Ptr(),
		LastPurchaseDate:  d.LastPurchaseDate.Ptr(),
		TotalSpending:     d.TotalSpending.Ptr(),
		AverageOrderValue: d.AverageOrderValue.Ptr(),
		Frequency:         d.Frequency.Ptr(),
		PreferredCategory: d.PreferredCategory.Ptr(),
		Churned:           d.Churned.Ptr(),
	}
}

// ToDomain rebuilds the aggregate from a row. Query handlers reuse it.
func ToDomain(dto CustomerDTO) *customer.Customer {
	return customer.RestoreCustomer(dto.ID, dto.Version, customer.Details{
		FirstName:         kernel.FromPtr(dto.FirstName),
		LastName:          kernel.FromPtr(dto.LastName),
		Email:             kernel.FromPtr(dto.Email),
		Age:               kernel.FromPtr(dto.Age),
		Gender:            kernel.FromPtr(dto.Gender),
		PostalCode:        kernel.FromPtr(dto.PostalCode),
		PhoneNumber:       kernel.FromPtr(dto.PhoneNumber),
		MembershipStatus:  kernel.FromPtr(dto.MembershipStatus),
		JoinDate:          kernel.FromPtr(dto.JoinDate),
		LastPurchaseDate:  kernel.FromPtr(dto.LastPurchaseDate),
		TotalSpending:     kernel.FromPtr(dto.TotalSpending),
		AverageOrderValue: kernel.FromPtr(dto.AverageOrderValue),
		Frequency:         kernel.FromPtr(dto.Frequency),
		PreferredCategory: kernel.FromPtr(dto.PreferredCategory),
		Churned:           kernel.FromPtr(dto.Churned),
	})
}
