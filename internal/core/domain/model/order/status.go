package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Completed
//	          │
//	          └──> Cancelled
//
// Completed and Cancelled are terminal. Status is persisted and exchanged by
// its name, never by its numeric value.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order that does not state otherwise.
	Pending

	// Completed means the sale went through. Terminal.
	Completed

	// Cancelled means the order was withdrawn. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// transitionRefusals lists, for every status, why a move to each target is
// refused. A pair that is absent from the table is an allowed transition.
func transitionRefusals() map[Status]map[Status]string {
	//nolint:exhaustive // Pending only refuses the self transition
	return map[Status]map[Status]string{
		Pending: {
			Pending: "Order is already pending",
		},
		Completed: {
			Pending:   "Cannot reopen a completed order",
			Completed: "Order is already completed",
			Cancelled: "Cannot cancel a completed order",
		},
		Cancelled: {
			Pending:   "Cannot reopen a cancelled order",
			Completed: "Cannot complete a cancelled order",
			Cancelled: "Order is already cancelled",
		},
	}
}

// ParseStatus resolves a status by its name. Only the three valid names are
// accepted; matching is case-sensitive.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of Pending, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo applies the transition table. It returns target when the move
// is allowed and an InvalidTransitionError otherwise. Unknown and invalid
// values can never transition.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	refusals, ok := transitionRefusals()[s]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(
			s.String(), target.String(), fmt.Sprintf("Order in status %s cannot change status", s),
		)
	}

	if reason, refused := refusals[target]; refused {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String(), reason)
	}

	return target, nil
}

// Complete is TransitionTo(Completed).
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Completed)
}

// Cancel is TransitionTo(Cancelled).
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
