// Package errs provides standardized error types for the food-delivery backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two groups of errors live here:
//
//   - Validation errors raised by domain constructors: ValueIsRequiredError,
//     ValueIsInvalidError, ValueIsOutOfRangeError.
//   - The operation failure taxonomy surfaced to API callers:
//     ObjectNotFoundError, ConflictError, InsufficientBalanceError,
//     ForbiddenError, UpstreamUnavailableError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// The HTTP adapter relies on errors.Is against the sentinels to map failures
// to status codes; no handler inspects error strings.
package errs
