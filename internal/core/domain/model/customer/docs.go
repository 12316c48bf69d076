// Package customer contains the Customer aggregate of the bakery domain.
//
// A customer is created with defaults for its join date, spending, purchase
// frequency and churn flag, and is afterwards changed only by full-record
// replacement. Customers are never deleted. Email uniqueness spans the whole
// customer set and is therefore enforced by the registry, not the aggregate.
package customer
