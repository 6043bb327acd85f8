package easypost

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"shiplabel/internal/core/domain/model/label"
	"shiplabel/internal/core/domain/model/rate"
	"shiplabel/internal/core/domain/model/shipment"
	"shiplabel/internal/core/ports"
)

// ---- request bodies ----

type addressDTO struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type parcelDTO struct {
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type shipmentDTO struct {
	ToAddress   addressDTO `json:"to_address"`
	FromAddress addressDTO `json:"from_address"`
	Parcel      parcelDTO  `json:"parcel"`
}

type createShipmentRequest struct {
	Shipment shipmentDTO `json:"shipment"`
}

type rateRefDTO struct {
	ID string `json:"id"`
}

type buyRequest struct {
	Rate rateRefDTO `json:"rate"`
}

// ---- response bodies ----

type rateDTO struct {
	ID       string     `json:"id"`
	Carrier  string     `json:"carrier"`
	Service  string     `json:"service"`
	Rate     amountText `json:"rate"`
	Currency string     `json:"currency"`
}

type shipmentResponse struct {
	ID    string    `json:"id"`
	Rates []rateDTO `json:"rates"`
}

type buyResponse struct {
	PostageLabel *struct {
		LabelURL string `json:"label_url"`
	} `json:"postage_label"`
	Tracker *struct {
		PublicURL string `json:"public_url"`
	} `json:"tracker"`
}

type errorResponse struct {
	Error        json.RawMessage `json:"error"`
	ErrorMessage string          `json:"errorMessage"`
}

// amountText accepts a price written either as a JSON string ("7.58") or as a
// JSON number (7.58) and keeps its text.
type amountText string

func (a *amountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountText(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("rate amount: %w", err)
		}
		*a = amountText(n.String())
		return nil
	}
}

// ---- conversions ----

func fromAddress(a shipment.Address) addressDTO {
	return addressDTO{
		Street1: a.Street1(),
		Street2: a.Street2(),
		City:    a.City(),
		State:   a.State(),
		Zip:     a.Zip(),
		Country: a.Country(),
	}
}

func fromRequest(r shipment.Request) createShipmentRequest {
	p := r.Parcel()
	return createShipmentRequest{
		Shipment: shipmentDTO{
			ToAddress:   fromAddress(r.To()),
			FromAddress: fromAddress(r.From()),
			Parcel: parcelDTO{
				Weight: p.Weight(),
				Length: p.Length(),
				Width:  p.Width(),
				Height: p.Height(),
			},
		},
	}
}

// toQuote converts a shipment answer. A missing rates list is an empty quote;
// a missing shipment id or an unusable rate is a malformed response.
func (r shipmentResponse) toQuote() (rate.Quote, error) {
	rates := make([]rate.Rate, 0, len(r.Rates))
	for i, dto := range r.Rates {
		rt, err := rate.NewRate(dto.ID, dto.Carrier, dto.Service, string(dto.Rate), dto.Currency)
		if err != nil {
			return rate.Quote{}, fmt.Errorf("%w: rate %d: %w", ports.ErrMalformedResponse, i, err)
		}
		rates = append(rates, rt)
	}

	quote, err := rate.NewQuote(r.ID, rates)
	if err != nil {
		return rate.Quote{}, fmt.Errorf("%w: %w", ports.ErrMalformedResponse, err)
	}
	return quote, nil
}

func (r buyResponse) toLabel() (label.Label, error) {
	var labelURL, trackerURL string
	if r.PostageLabel != nil {
		labelURL = r.PostageLabel.LabelURL
	}
	if r.Tracker != nil {
		trackerURL = r.Tracker.PublicURL
	}

	l, err := label.NewLabel(labelURL, trackerURL)
	if err != nil {
		return label.Label{}, fmt.Errorf("%w: %w", ports.ErrMalformedResponse, err)
	}
	return l, nil
}

// errorMessage extracts the provider's explanation from an error body.
// EasyPost nests it as {"error":{"message":...}}; plain {"error":"..."} and
// {"errorMessage":"..."} are accepted too. Unknown shapes yield "".
func errorMessage(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}

	if len(resp.Error) > 0 {
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(resp.Error, &nested); err == nil && nested.Message != "" {
			return strings.TrimSpace(nested.Message)
		}

		var plain string
		if err := json.Unmarshal(resp.Error, &plain); err == nil && plain != "" {
			return strings.TrimSpace(plain)
		}
	}

	return strings.TrimSpace(resp.ErrorMessage)
}
