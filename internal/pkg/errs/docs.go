// Package errs provides standardized error types for the cold-chain tracking core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the expected, recoverable-by-caller outcomes of the business
// operations:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid (e.g. an inverted temperature range)
//   - ValueIsOutOfRangeError: a value lies outside permitted bounds
//   - ObjectNotFoundError: a shipment or log entry cannot be found
//   - ObjectAlreadyExistsError: a shipment identifier is already registered
//   - NotAuthorizedError: the caller principal may not perform the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Domain outcomes that belong to a specific aggregate (the already-completed guard
// and the temperature-breach warning) live next to that aggregate in the shipment
// package rather than here.
package errs
