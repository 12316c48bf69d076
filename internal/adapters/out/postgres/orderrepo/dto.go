// Package orderrepo persists order aggregates in the orders table. Status is
// stored by name.
package orderrepo

import (
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row shape of the orders table.
type OrderDTO struct {
	ID             int64             `gorm:"column:transaction_id;primaryKey"`
	Version        int               `gorm:"column:version"`
	CustomerID     *int64            `gorm:"column:customer_id"`
	ProductID      *int64            `gorm:"column:product_id"`
	OrderDate      *kernel.Date      `gorm:"column:order_date;type:date"`
	OrderTime      *kernel.TimeOfDay `gorm:"column:order_time;type:time(0)"`
	Quantity       *int              `gorm:"column:quantity"`
	Price          *decimal.Decimal  `gorm:"column:price;type:numeric(10,2)"`
	PaymentMethod  *string           `gorm:"column:payment_method"`
	Channel        *string           `gorm:"column:channel"`
	StoreID        *int              `gorm:"column:store_id"`
	PromotionID    *int              `gorm:"column:promotion_id"`
	Status         string            `gorm:"column:status"`
	DiscountAmount *decimal.Decimal  `gorm:"column:discount_amount;type:numeric(10,2)"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	d := o.Details()
	return OrderDTO{
		ID:             o.ID(),
		Version:        o.Version(),
		CustomerID:     d.CustomerID.Ptr(),
		ProductID:      d.ProductID.Ptr(),
		OrderDate:      d.OrderDate.Ptr(),
		OrderTime:      d.OrderTime.Ptr(),
		Quantity:       d.Quantity.Ptr(),
		Price:          d.Price.Ptr(),
		PaymentMethod:  d.PaymentMethod.Ptr(),
		Channel:        d.Channel.Ptr(),
		StoreID:        d.StoreID.Ptr(),
		PromotionID:    d.PromotionID.Ptr(),
		Status:         o.Status().String(),
		DiscountAmount: d.DiscountAmount.Ptr(),
	}
}

// ToDomain rebuilds the aggregate from a row. A status name outside the
// known set means the row was written by something else and is an error.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", dto.ID, err)
	}

	return order.RestoreOrder(dto.ID, dto.Version, order.Details{
		CustomerID:     kernel.FromPtr(dto.CustomerID),
		ProductID:      kernel.FromPtr(dto.ProductID),
		OrderDate:      kernel.FromPtr(dto.OrderDate),
		OrderTime:      kernel.FromPtr(dto.OrderTime),
		Quantity:       kernel.FromPtr(dto.Quantity),
		Price:          kernel.FromPtr(dto.Price),
		PaymentMethod:  kernel.FromPtr(dto.PaymentMethod),
		Channel:        kernel.FromPtr(dto.Channel),
		StoreID:        kernel.FromPtr(dto.StoreID),
		PromotionID:    kernel.FromPtr(dto.PromotionID),
		DiscountAmount: kernel.FromPtr(dto.DiscountAmount),
	}, status), nil
}
