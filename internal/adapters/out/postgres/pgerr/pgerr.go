// Package pgerr translates PostgreSQL constraint violations into domain errors.
// The store's unique index and foreign keys are the authoritative guard behind
// the registry's pre-checks, so their violations must read the same way.
package pgerr

import (
	"errors"

	"bakery/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
)

// Constraint names declared by the migrations.
const (
	CustomerEmailIndex   = "ux_customers_email"
	OrderCustomerFK      = "fk_orders_customers"
	OrderProductFK       = "fk_orders_products"
	customerReferenceKey = "customer"
	productReferenceKey  = "product"
)

// Values carries the attempted values used to build a readable error.
type Values struct {
	Email      any
	CustomerID any
	ProductID  any
}

// Translate maps a known constraint violation to DuplicateValueError or
// ReferenceNotFoundError and returns any other error unchanged.
func Translate(err error, values Values) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case CodeUniqueViolation:
		if pgErr.ConstraintName == CustomerEmailIndex {
			return errs.NewDuplicateValueErrorWithCause("email", values.Email, err)
		}
	case CodeForeignKeyViolation:
		switch pgErr.ConstraintName {
		case OrderCustomerFK:
			return errs.NewReferenceNotFoundErrorWithCause(customerReferenceKey, values.CustomerID, err)
		case OrderProductFK:
			return errs.NewReferenceNotFoundErrorWithCause(productReferenceKey, values.ProductID, err)
		}
	}

	return err
}
