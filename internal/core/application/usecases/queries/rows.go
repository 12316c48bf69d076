// Package queries contains the read side: lookups and listings that never
// modify state. Handlers read straight from the database with SQL and rebuild
// domain aggregates with the Restore factories.
package queries

import (
	"context"
	"database/sql"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const customerColumns = `
	customer_id, version, first_name, last_name, email, age, gender,
	postal_code, phone_number, membership_status, join_date, last_purchase_date,
	total_spending, average_order_value, frequency, preferred_category, churned`

const productColumns = `
	product_id, version, product_name, category, ingredients, price, cost,
	seasonal, active, introduced_date`

const orderColumns = `
	transaction_id, version, customer_id, product_id, order_date, order_time,
	quantity, price, payment_method, channel, store_id, promotion_id, status,
	discount_amount`

type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(s scanner) (*customer.Customer, error) {
	var (
		id                                                  int64
		version                                             int
		firstName, lastName, email, gender                  *string
		postalCode, phoneNumber, membership, preferredGroup *string
		age, frequency                                      *int
		joinDate, lastPurchaseDate                          *kernel.Date
		totalSpending, averageOrderValue                    *decimal.Decimal
		churned                                             *bool
	)

	err := s.Scan(
		&id, &version, &firstName, &lastName, &email, &age, &gender,
		&postalCode, &phoneNumber, &membership, &joinDate, &lastPurchaseDate,
		&totalSpending, &averageOrderValue, &frequency, &preferredGroup, &churned,
	)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, version, customer.Details{
		FirstName:         kernel.FromPtr(firstName),
		LastName:          kernel.FromPtr(lastName),
		Email:             kernel.FromPtr(email),
		Age:               kernel.FromPtr(age),
		Gender:            kernel.FromPtr(gender),
		PostalCode:        kernel.FromPtr(postalCode),
		PhoneNumber:       kernel.FromPtr(phoneNumber),
		MembershipStatus:  kernel.FromPtr(membership),
		JoinDate:          kernel.FromPtr(joinDate),
		LastPurchaseDate:  kernel.FromPtr(lastPurchaseDate),
		TotalSpending:     kernel.FromPtr(totalSpending),
		AverageOrderValue: kernel.FromPtr(averageOrderValue),
		Frequency:         kernel.FromPtr(frequency),
		PreferredCategory: kernel.FromPtr(preferredGroup),
		Churned:           kernel.FromPtr(churned),
	}), nil
}

func scanProduct(s scanner) (*product.Product, error) {
	var (
		id                          int64
		version                     int
		name, category, ingredients *string
		price, cost                 *decimal.Decimal
		seasonal, active            *bool
		introducedDate              *kernel.Date
	)

	err := s.Scan(&id, &version, &name, &category, &ingredients, &price, &cost, &seasonal, &active, &introducedDate)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, version, product.Details{
		Name:           kernel.FromPtr(name),
		Category:       kernel.FromPtr(category),
		Ingredients:    kernel.FromPtr(ingredients),
		UnitPrice:      kernel.FromPtr(price),
		UnitCost:       kernel.FromPtr(cost),
		Seasonal:       kernel.FromPtr(seasonal),
		Active:         kernel.FromPtr(active),
		IntroducedDate: kernel.FromPtr(introducedDate),
	}), nil
}

func scanOrder(s scanner) (*order.Order, error) {
	var (
		id                     int64
		version                int
		customerID, productID  *int64
		orderDate              *kernel.Date
		orderTime              *kernel.TimeOfDay
		quantity, store, promo *int
		price, discount        *decimal.Decimal
		paymentMethod, channel *string
		statusName             string
	)

	err := s.Scan(
		&id, &version, &customerID, &productID, &orderDate, &orderTime,
		&quantity, &price, &paymentMethod, &channel, &store, &promo, &statusName,
		&discount,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(statusName)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, version, order.Details{
		CustomerID:     kernel.FromPtr(customerID),
		ProductID:      kernel.FromPtr(productID),
		OrderDate:      kernel.FromPtr(orderDate),
		OrderTime:      kernel.FromPtr(orderTime),
		Quantity:       kernel.FromPtr(quantity),
		Price:          kernel.FromPtr(price),
		PaymentMethod:  kernel.FromPtr(paymentMethod),
		Channel:        kernel.FromPtr(channel),
		StoreID:        kernel.FromPtr(store),
		PromotionID:    kernel.FromPtr(promo),
		DiscountAmount: kernel.FromPtr(discount),
	}, status), nil
}

// queryAll runs a SELECT and scans every row. The result is never nil.
func queryAll[T any](ctx context.Context, db *gorm.DB, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	result := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func closeRows(rows *sql.Rows) {
	_ = rows.Close()
}
