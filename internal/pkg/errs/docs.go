// Package errs provides standardized error types for the bakery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - DuplicateValueError: For when a value must be unique and is already taken
//   - ReferenceNotFoundError: For when a referenced object does not exist
//   - InvalidTransitionError: For when a state machine rejects a transition
//   - ConcurrencyConflictError: For when a row changed since it was read
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels or errors.As
// against the struct types. IsValidation groups the three input validation
// kinds together.
package errs
