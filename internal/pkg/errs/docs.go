// Package errs provides the standardized error types used across the parcel
// relay application. It implements one consistent pattern for creating,
// formatting, and unwrapping errors.
//
// Error categories:
//   - ObjectNotFoundError: a referenced entity is missing from storage
//   - ValueIsInvalidError: a value failed domain validation
//   - ValueIsRequiredError: a required value was absent
//   - ValueIsOutOfRangeError: a value fell outside its allowed bounds
//   - ConflictError: the stored state already advanced past the requested
//     transition (for example, an order claimed by someone else first)
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Callers classify errors with errors.Is against the sentinels, which keeps
// domain rejections distinguishable from infrastructure failures: anything
// that does not unwrap to one of the sentinels here is treated as an
// infrastructure error and may be retried.
package errs
