package http

import (
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func dateFromAPI(d *openapi_types.Date) kernel.Optional[kernel.Date] {
	if d == nil {
		return kernel.None[kernel.Date]()
	}
	return kernel.Some(kernel.DateOf(d.Time))
}

func dateToAPI(d kernel.Optional[kernel.Date]) *openapi_types.Date {
	v, ok := d.Get()
	if !ok {
		return nil
	}
	return &openapi_types.Date{Time: v.Time()}
}

func customerDetailsFromAPI(c servers.Customer) customer.Details {
	return customer.Details{
		FirstName:         kernel.FromPtr(c.FirstName),
		LastName:          kernel.FromPtr(c.LastName),
		Email:             kernel.FromPtr(c.Email),
		Age:               kernel.FromPtr(c.Age),
		Gender:            kernel.FromPtr(c.Gender),
		PostalCode:        kernel.FromPtr(c.PostalCode),
		PhoneNumber:       kernel.FromPtr(c.PhoneNumber),
		MembershipStatus:  kernel.FromPtr(c.MembershipStatus),
		JoinDate:          dateFromAPI(c.JoinDate),
		LastPurchaseDate:  dateFromAPI(c.LastPurchaseDate),
		TotalSpending:     kernel.FromPtr(c.TotalSpending),
		AverageOrderValue: kernel.FromPtr(c.AverageOrderValue),
		Frequency:         kernel.FromPtr(c.Frequency),
		PreferredCategory: kernel.FromPtr(c.PreferredCategory),
		Churned:           kernel.FromPtr(c.Churned),
	}
}

func customerToAPI(c *customer.Customer) servers.Customer {
	id := c.ID()
	d := c.Details()
	return servers.Customer{
		CustomerId:        &id,
		FirstName:         d.FirstName.Ptr(),
		LastName:          d.LastName.Ptr(),
		Email:             d.Email.Ptr(),
		Age:               d.Age.Ptr(),
		Gender:            d.Gender.Ptr(),
		PostalCode:        d.PostalCode.Ptr(),
		PhoneNumber:       d.PhoneNumber.Ptr(),
		MembershipStatus:  d.MembershipStatus.Ptr(),
		JoinDate:          dateToAPI(d.JoinDate),
		LastPurchaseDate:  dateToAPI(d.LastPurchaseDate),
		TotalSpending:     d.TotalSpending.Ptr(),
		AverageOrderValue: d.AverageOrderValue.Ptr(),
		Frequency:         d.Frequency.Ptr(),
		PreferredCategory: d.PreferredCategory.Ptr(),
		Churned:           d.Churned.Ptr(),
	}
}

func productDetailsFromAPI(p servers.Product) product.Details {
	return product.Details{
		Name:           kernel.FromPtr(p.ProductName),
		Category:       kernel.FromPtr(p.Category),
		Ingredients:    kernel.FromPtr(p.Ingredients),
		UnitPrice:      kernel.FromPtr(p.Price),
		UnitCost:       kernel.FromPtr(p.Cost),
		Seasonal:       kernel.FromPtr(p.Seasonal),
		Active:         kernel.FromPtr(p.Active),
		IntroducedDate: dateFromAPI(p.IntroducedDate),
	}
}

func productToAPI(p *product.Product) servers.Product {
	id := p.ID()
	d := p.Details()
	return servers.Product{
		ProductId:      &id,
		ProductName:    d.Name.Ptr(),
		Category:       d.Category.Ptr(),
		Ingredients:    d.Ingredients.Ptr(),
		Price:          d.UnitPrice.Ptr(),
		Cost:           d.UnitCost.Ptr(),
		Seasonal:       d.Seasonal.Ptr(),
		Active:         d.Active.Ptr(),
		IntroducedDate: dateToAPI(d.IntroducedDate),
	}
}

// orderFromAPI converts a request body. The time of day and the status are the
// only fields that can fail to parse.
func orderFromAPI(o servers.Order) (order.Details, kernel.Optional[order.Status], error) {
	status := kernel.None[order.Status]()
	details := order.Details{
		CustomerID:     kernel.FromPtr(o.CustomerId),
		ProductID:      kernel.FromPtr(o.ProductId),
		OrderDate:      dateFromAPI(o.OrderDate),
		Quantity:       kernel.FromPtr(o.Quantity),
		Price:          kernel.FromPtr(o.Price),
		PaymentMethod:  kernel.FromPtr(o.PaymentMethod),
		Channel:        kernel.FromPtr(o.Channel),
		StoreID:        kernel.FromPtr(o.StoreId),
		PromotionID:    kernel.FromPtr(o.PromotionId),
		DiscountAmount: kernel.FromPtr(o.DiscountAmount),
	}

	if o.OrderTime != nil {
		tod, err := kernel.ParseTimeOfDay(*o.OrderTime)
		if err != nil {
			return order.Details{}, status, errs.NewValueIsInvalidErrorWithCause("orderTime", err)
		}
		details.OrderTime = kernel.Some(tod)
	}

	if o.Status != nil {
		s, err := order.ParseStatus(string(*o.Status))
		if err != nil {
			return order.Details{}, status, err
		}
		status = kernel.Some(s)
	}

	return details, status, nil
}

// orderToAPI renders an order; c and p are embedded when not nil.
func orderToAPI(o *order.Order, c *customer.Customer, p *product.Product) servers.Order {
	id := o.ID()
	d := o.Details()
	status := servers.OrderStatus(o.Status().String())

	var orderTime *string
	if tod, ok := d.OrderTime.Get(); ok {
		s := tod.String()
		orderTime = &s
	}

	out := servers.Order{
		TransactionId:  &id,
		CustomerId:     d.CustomerID.Ptr(),
		ProductId:      d.ProductID.Ptr(),
		OrderDate:      dateToAPI(d.OrderDate),
		OrderTime:      orderTime,
		Quantity:       d.Quantity.Ptr(),
		Price:          d.Price.Ptr(),
		PaymentMethod:  d.PaymentMethod.Ptr(),
		Channel:        d.Channel.Ptr(),
		StoreId:        d.StoreID.Ptr(),
		PromotionId:    d.PromotionID.Ptr(),
		Status:         &status,
		DiscountAmount: d.DiscountAmount.Ptr(),
	}
	if c != nil {
		apiCustomer := customerToAPI(c)
		out.Customer = &apiCustomer
	}
	if p != nil {
		apiProduct := productToAPI(p)
		out.Product = &apiProduct
	}
	return out
}
