package services

import (
	"errors"

	"shiplabel/internal/core/domain/model/rate"
)

// ErrNoRatesFound is returned when there is nothing to select from.
var ErrNoRatesFound = errors.New("no rates found")

// CheapestRateSelector is a domain service that picks the rate to purchase
// from a quote: the one with the lowest decimal amount.
//
// Selection rules:
//   - Amounts are compared as decimal values, never as text
//   - On equal amounts the rate that came first in provider order wins
//   - No secondary key (carrier, service, delivery days) is considered
//   - The rates slice is not reordered
//
// Example usage:
//
//	selector := services.NewCheapestRateSelector()
//	cheapest, err := selector.Select(quote.Rates())
//	if errors.Is(err, services.ErrNoRatesFound) {
//	    // The provider offered nothing for this shipment
//	    return
//	}
type CheapestRateSelector struct{}

// NewCheapestRateSelector creates a new CheapestRateSelector instance.
func NewCheapestRateSelector() CheapestRateSelector {
	return CheapestRateSelector{}
}

// Select returns the cheapest rate.
//
// Returns:
//   - rate.Rate: the first rate whose amount is not greater than any other
//   - error: ErrNoRatesFound for an empty slice, or the validation error of an
//     unconstructed rate
func (s CheapestRateSelector) Select(rates []rate.Rate) (rate.Rate, error) {
	if len(rates) == 0 {
		return rate.Rate{}, ErrNoRatesFound
	}

	best := rates[0]
	if err := best.Validate(); err != nil {
		return rate.Rate{}, err
	}

	for _, r := range rates[1:] {
		if err := r.Validate(); err != nil {
			return rate.Rate{}, err
		}

		if r.IsCheaperThan(best) {
			best = r
		}
	}

	return best, nil
}
