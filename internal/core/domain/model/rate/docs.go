// Package rate models what a provider offers for a shipment.
//
// The package includes:
//   - Rate: one priced carrier service option with a decimal Amount
//   - Quote: the shipment identifier plus the rates offered for it
//
// Rates live only as long as one label purchase; a rate is purchasable only
// together with the shipment identifier of the quote it came from.
package rate
