// Package ports defines the outbound contracts of the label service.
// The core depends on these interfaces only; adapters implement them.
package ports

import (
	"context"
	"errors"
	"fmt"

	"shiplabel/internal/core/domain/model/label"
	"shiplabel/internal/core/domain/model/rate"
	"shiplabel/internal/core/domain/model/shipment"
)

// ErrMalformedResponse marks a provider answer that reported success but could
// not be turned into domain values (missing identifiers, unparseable amounts).
var ErrMalformedResponse = errors.New("malformed provider response")

// LabelProvider is the capability the orchestrator needs from a carrier-rate
// and label service. Implementations must make each call at most once: no
// internal retries, since a repeated purchase can buy a second label.
type LabelProvider interface {
	// CreateShipment registers the shipment with the provider and returns the
	// provider-assigned shipment id with the rates offered for it.
	CreateShipment(ctx context.Context, request shipment.Request) (rate.Quote, error)

	// PurchaseRate buys the given rate of the given shipment and returns the label.
	PurchaseRate(ctx context.Context, shipmentID, rateID string) (label.Label, error)
}

// ProviderConfig holds the process-wide provider settings. It is resolved once
// at start-up and only read afterwards.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
}

// Validate reports missing settings.
func (c ProviderConfig) Validate() error {
	switch {
	case c.APIKey == "":
		return errors.New("missing provider API key")
	case c.BaseURL == "":
		return errors.New("missing provider base URL")
	default:
		return nil
	}
}

// ProviderError is a non-success answer from the provider.
// StatusCode is the HTTP status when the transport exposes one, otherwise 0.
// Message is the provider's own explanation and may be empty.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Message)
}
