package commands

import (
	"errors"
	"fmt"

	"shiplabel/internal/core/ports"
)

// Stage names the step of a label purchase at which it failed.
type Stage int

const (
	// StageUnknown is the zero value and never reported by the handler.
	StageUnknown Stage = iota

	// StageConfig means provider settings are missing; nothing was sent.
	StageConfig

	// StageQuote means the shipment could not be quoted; nothing was bought.
	StageQuote

	// StageSelection means the quote offered no rate to buy.
	StageSelection

	// StagePurchase means the selected rate could not be bought.
	StagePurchase
)

func (s Stage) String() string {
	switch s {
	case StageConfig:
		return "Config"
	case StageQuote:
		return "Quote"
	case StageSelection:
		return "Selection"
	case StagePurchase:
		return "Purchase"
	default:
		return "Unknown"
	}
}

const (
	MessageNoRatesFound        = "No rates found for this shipment"
	MessageQuoteFailed         = "Failed to create shipment"
	MessagePurchaseFailed      = "Failed to purchase label"
	MessageInvalidRequest      = "Invalid shipment request"
	messageConfigurationPrefix = "Server configuration error: "
)

// LabelPurchaseError is the only error type PurchaseCheapestLabelCommandHandler
// returns. Message is safe to show to the caller; StatusCode carries the
// provider's HTTP status when there was one; Cause keeps the underlying error
// for logs and errors.Is/As.
type LabelPurchaseError struct {
	Stage      Stage
	Message    string
	StatusCode int
	Cause      error
}

func (e *LabelPurchaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s stage: %s (cause: %v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s stage: %s", e.Stage, e.Message)
}

func (e *LabelPurchaseError) Unwrap() error {
	return e.Cause
}

// newStageError turns any error raised while running stage into a
// LabelPurchaseError. Provider answers keep their message and status; transport
// faults, malformed payloads and cancellations get the stage fallback message.
func newStageError(stage Stage, fallback string, err error) *LabelPurchaseError {
	var labelErr *LabelPurchaseError
	if errors.As(err, &labelErr) {
		return labelErr
	}

	var providerErr *ports.ProviderError
	if errors.As(err, &providerErr) {
		message := providerErr.Message
		if message == "" {
			message = fallback
		}
		return &LabelPurchaseError{
			Stage:      stage,
			Message:    message,
			StatusCode: providerErr.StatusCode,
			Cause:      err,
		}
	}

	return &LabelPurchaseError{Stage: stage, Message: fallback, Cause: err}
}
