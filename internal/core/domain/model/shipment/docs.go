// Package shipment models what a caller asks to ship.
//
// The package includes:
//   - Address: a validated US postal address (zip DDDDD or DDDDD-DDDD, two-letter state)
//   - Parcel: positive weight and dimensions, units opaque
//   - Request: origin, destination and parcel of one label purchase
//
// Constructors report every invalid field at once via errors.Join, so callers can
// render all problems in a single response.
package shipment
