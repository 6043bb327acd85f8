// Package commands contains the business operations of the label service.
// Each command follows the same pattern: a command value validated by its
// constructor and a handler whose Handle method runs the use case against
// outbound ports.
package commands
