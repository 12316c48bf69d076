// Package kernel provides the shared value objects of the bakery domain model.
//
// The package includes:
//   - Optional: a present/absent value used for every nullable attribute, so that
//     "omitted" and "explicitly zero" stay distinguishable
//   - Date and TimeOfDay: calendar date and wall clock time without a time zone,
//     usable as JSON values and as DATE/TIME column values
//   - Clock: the source of "today" and "now" for derived defaults
package kernel
