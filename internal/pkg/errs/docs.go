// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: field constraint violations
//   - ObjectNotFoundError: a referenced order, shipment, driver, vehicle or city does not exist
//   - InvalidStateError: an operation is not valid for the current lifecycle state
//   - ResourceUnavailableError: a driver or vehicle is already reserved
//   - ForbiddenError, UnauthenticatedError: access control failures
//   - BadRequestError: malformed or disallowed request fields
//   - VersionIsInvalidError: an optimistic concurrency token did not match
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf classifies any error chain into a stable, machine-readable Kind that
// inbound adapters translate into transport status codes.
package errs
