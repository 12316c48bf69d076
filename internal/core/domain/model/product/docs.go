// Package product contains the Product aggregate: something the bakery sells,
// with a unit price used to derive order prices at creation time.
package product
