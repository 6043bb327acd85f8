// Package easypost implements ports.LabelProvider against the EasyPost v2 REST API.
package easypost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shiplabel/internal/core/domain/model/label"
	"shiplabel/internal/core/domain/model/rate"
	"shiplabel/internal/core/domain/model/shipment"
	"shiplabel/internal/core/ports"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.easypost.com/v2"

	// DefaultTimeout bounds a single provider call when no client is supplied.
	DefaultTimeout = 15 * time.Second

	maxResponseBytes = 4 << 20
)

var _ ports.LabelProvider = (*Client)(nil)

// Client calls EasyPost over HTTP. Each method sends exactly one request and
// never retries. It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client for cfg. A nil httpClient gets DefaultTimeout,
// an empty base URL falls back to DefaultBaseURL.
func NewClient(cfg ports.ProviderConfig, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.With(zap.String("component", "easypost_client")),
	}
}

// CreateShipment posts the shipment and returns the quote EasyPost computed for it.
func (c *Client) CreateShipment(ctx context.Context, request shipment.Request) (rate.Quote, error) {
	var resp shipmentResponse
	if err := c.doRequest(ctx, http.MethodPost, "/shipments", fromRequest(request), &resp); err != nil {
		return rate.Quote{}, fmt.Errorf("easypost CreateShipment: %w", err)
	}

	quote, err := resp.toQuote()
	if err != nil {
		return rate.Quote{}, fmt.Errorf("easypost CreateShipment: %w", err)
	}
	return quote, nil
}

// PurchaseRate buys rateID for shipmentID and returns the label.
func (c *Client) PurchaseRate(ctx context.Context, shipmentID, rateID string) (label.Label, error) {
	path := "/shipments/" + url.PathEscape(shipmentID) + "/buy"

	var resp buyResponse
	if err := c.doRequest(ctx, http.MethodPost, path, buyRequest{Rate: rateRefDTO{ID: rateID}}, &resp); err != nil {
		return label.Label{}, fmt.Errorf("easypost PurchaseRate: %w", err)
	}

	l, err := resp.toLabel()
	if err != nil {
		return label.Label{}, fmt.Errorf("easypost PurchaseRate: %w", err)
	}
	return l, nil
}

// ---- HTTP helper ----

func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	// EasyPost takes the API key as the basic auth user with an empty password.
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("provider request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("provider request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ports.ProviderError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBytes),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("%w: decode response: %w", ports.ErrMalformedResponse, err)
		}
	}
	return nil
}
