// Package errs provides standardized error types for the bookstore
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping used throughout the codebase.
//
// The package covers the error kinds the ordering core produces:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed range
//   - ObjectNotFoundError: a referenced object cannot be found
//   - IllegalTransitionError: a fulfillment event fired from a state outside
//     its declared source set
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - an Error() method for formatting and an Unwrap() method returning
//     the sentinel
package errs
