// Package errs provides standardized error types for the label service.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type carrying the parameter name and an optional cause
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures with errors.Is against the sentinels and
// extract details with errors.As.
package errs
