// Package services provides domain services of the label service that work on
// more than one value object at a time.
//
// The package includes:
//   - CheapestRateSelector: picks the lowest priced rate of a quote
//
// Services here are pure: no I/O, no state, deterministic for equal input.
package services
