// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its legal bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when current state forbids the requested change
//   - IllegalTransitionError: For when a lifecycle transition is not allowed
//   - VersionIsInvalidError: For optimistic concurrency failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Errors fall into two caller-facing categories: validation failures (the
// caller's input is malformed and can be corrected) and conflict failures
// (the stored state or a constraint forbids the operation). IsValidation and
// IsConflict classify any error from this package so an integrating transport
// layer can map categories to status codes without the core knowing about them.
package errs
