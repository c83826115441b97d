// Package errs provides standardized error types for the fulfillment backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the engine's error taxonomy:
//   - ObjectNotFoundError: a referenced product, cart item, order, or account does not exist
//   - CartIsEmptyError: checkout attempted with no cart items
//   - ForbiddenError: an actor attempted to act on a resource it does not own
//   - UnverifiedError: a vendor attempted an operation requiring admin verification
//   - ConflictError: a concurrent modification race or illegal status transition
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// All engine errors are local, synchronous rejections; nothing is retried
// automatically. Callers use errors.Is against the sentinels to decide
// retry policy and HTTP status mapping.
package errs
