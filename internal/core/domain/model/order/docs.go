// Package order provides the Order aggregate of the bakery sales domain and the
// Status state machine governing it.
//
// The package includes:
//   - Order: the aggregate root holding the sale attributes, status and version
//   - Status: Pending, Completed and Cancelled with the transition table
//
// Key business rules:
//   - A new order needs a positive quantity; its status defaults to Pending
//   - Date, time and discount default from the creation moment and zero
//   - An absent or zero price is derived once as unit price × quantity
//   - Only Pending -> Completed and Pending -> Cancelled are lifecycle transitions
//   - Override replaces everything, status included, without the transition table
//
// Whether the referenced customer and product exist is a question for the
// registry; the aggregate only receives the resolved product.
package order
