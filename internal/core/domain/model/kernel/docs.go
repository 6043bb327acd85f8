// Package kernel provides the shared value objects of the label service.
//
// The package includes:
//   - UUID: a request correlation identifier
//   - Amount: a decimal price that remembers how the provider wrote it
//
// Both are immutable and reject their zero value through Validate.
package kernel
