package rate

import (
	"fmt"
	"strings"

	"shiplabel/internal/pkg/errs"
	"shiplabel/internal/pkg/guard"
)

// ErrQuoteIsNotConstructed is returned when a Quote bypassed NewQuote.
var ErrQuoteIsNotConstructed = errs.NewValueIsRequiredError("quote must be created via NewQuote")

// Quote is the provider's answer to one shipment creation: the provider-assigned
// shipment identifier and the rates offered for it, in provider order.
// A quote may carry no rates.
type Quote struct { //nolint:recvcheck //using for validation
	shipmentID string
	rates      []Rate

	guard guard.ConstructorGuard
}

// NewQuote validates the shipment identifier and every rate.
func NewQuote(shipmentID string, rates []Rate) (Quote, error) {
	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		return Quote{}, errs.NewValueIsRequiredError("shipment id")
	}

	for i, r := range rates {
		if err := r.Validate(); err != nil {
			return Quote{}, fmt.Errorf("rate %d: %w", i, err)
		}
	}

	return Quote{
		shipmentID: shipmentID,
		rates:      append([]Rate(nil), rates...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the quote was created through NewQuote.
func (q Quote) Validate() error {
	return q.guard.Validate(ErrQuoteIsNotConstructed)
}

// ShipmentID returns the provider-assigned shipment identifier.
func (q Quote) ShipmentID() string {
	return q.shipmentID
}

// Rates returns a copy of the offered rates in provider order.
func (q Quote) Rates() []Rate {
	return append([]Rate(nil), q.rates...)
}

// Contains reports whether a rate with the given id belongs to this quote.
func (q Quote) Contains(rateID string) bool {
	for _, r := range q.rates {
		if r.id == rateID {
			return true
		}
	}
	return false
}
