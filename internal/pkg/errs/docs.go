// Package errs provides standardized error types shared across the service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used by domain models, use cases, and adapters alike.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying error details (parameter name, value, cause)
//   - constructor functions with and without an underlying cause
//   - Error() producing a single-line message
//   - Unwrap() returning the sentinel for classification
//
// Domain-specific failures (illegal order transitions, payout rejections)
// live next to their aggregates; this package covers the generic cases:
// required values, invalid values, out-of-range values, missing objects,
// and stale aggregate versions.
package errs
