package commands

import (
	"context"
	"errors"
	"fmt"

	"shiplabel/internal/core/domain/model/label"
	"shiplabel/internal/core/domain/model/rate"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/core/ports"

	"go.uber.org/zap"
)

// PurchaseCheapestLabelResult is what a successful purchase returns to the caller.
// Price, currency, carrier and service come from the selected rate, not from the
// purchase answer.
type PurchaseCheapestLabelResult struct {
	LabelURL   string
	TrackerURL string
	Amount     string
	Currency   string
	Carrier    string
	Service    string
	ShipmentID string
	RateID     string
}

// PurchaseCheapestLabelCommandHandler quotes a shipment, picks the cheapest rate
// and buys it.
//
// The steps run strictly in order, each provider call at most once:
//
//	Init -> ConfigChecked -> Quoted -> Selected -> Purchased -> Done
//
// and any step may end the call with a *LabelPurchaseError naming its Stage.
// Nothing is retried; once the purchase call has been sent a failed result does
// not mean no label was bought, so callers must not blindly repeat the command.
//
// The handler keeps no state between calls and is safe for concurrent use.
//
// Example:
//
//	handler := NewPurchaseCheapestLabelCommandHandler(cfg, provider, logger)
//	result, err := handler.Handle(ctx, cmd)
//	var purchaseErr *LabelPurchaseError
//	if errors.As(err, &purchaseErr) && purchaseErr.Stage == StageSelection {
//	    // nothing to buy for this shipment
//	}
type PurchaseCheapestLabelCommandHandler struct {
	config   ports.ProviderConfig
	provider ports.LabelProvider
	selector services.CheapestRateSelector
	logger   *zap.Logger
}

// NewPurchaseCheapestLabelCommandHandler creates the handler. The config is
// checked on every call so a misconfigured process still answers with a
// Config stage error instead of failing at start-up.
func NewPurchaseCheapestLabelCommandHandler(
	config ports.ProviderConfig,
	provider ports.LabelProvider,
	logger *zap.Logger,
) PurchaseCheapestLabelCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return PurchaseCheapestLabelCommandHandler{
		config:   config,
		provider: provider,
		selector: services.NewCheapestRateSelector(),
		logger:   logger.With(zap.String("component", "purchase_cheapest_label")),
	}
}

// Handle runs one label purchase. Every non-nil error is a *LabelPurchaseError.
func (h PurchaseCheapestLabelCommandHandler) Handle(
	ctx context.Context,
	cmd PurchaseCheapestLabelCommand,
) (result PurchaseCheapestLabelResult, err error) {
	stage := StageConfig
	log := h.logger.With(zap.String("request_id", cmd.RequestID().String()))

	defer func() {
		if r := recover(); r != nil {
			result = PurchaseCheapestLabelResult{}
			err = h.fail(log, newStageError(stage, fallbackMessage(stage), fmt.Errorf("panic: %v", r)))
		}
	}()

	if cfgErr := h.config.Validate(); cfgErr != nil {
		return PurchaseCheapestLabelResult{}, h.fail(log, &LabelPurchaseError{
			Stage:   StageConfig,
			Message: messageConfigurationPrefix + cfgErr.Error(),
			Cause:   cfgErr,
		})
	}

	stage = StageQuote
	if cmdErr := cmd.Validate(); cmdErr != nil {
		return PurchaseCheapestLabelResult{}, h.fail(log, &LabelPurchaseError{
			Stage:   StageQuote,
			Message: MessageInvalidRequest,
			Cause:   cmdErr,
		})
	}

	quote, err := h.quote(ctx, cmd)
	if err != nil {
		return PurchaseCheapestLabelResult{}, h.fail(log, err)
	}
	log = log.With(zap.String("shipment_id", quote.ShipmentID()))

	stage = StageSelection
	selected, err := h.selector.Select(quote.Rates())
	if err != nil {
		return PurchaseCheapestLabelResult{}, h.fail(log, newStageError(StageSelection, MessageNoRatesFound, err))
	}
	log = log.With(
		zap.String("rate_id", selected.ID()),
		zap.String("amount", selected.Amount().String()),
		zap.String("currency", selected.Currency()),
	)

	stage = StagePurchase
	purchased, err := h.purchase(ctx, quote, selected)
	if err != nil {
		return PurchaseCheapestLabelResult{}, h.fail(log, err)
	}

	log.Info("label purchased",
		zap.String("carrier", selected.Carrier()),
		zap.String("service", selected.Service()),
	)

	return PurchaseCheapestLabelResult{
		LabelURL:   purchased.URL(),
		TrackerURL: purchased.TrackerURL(),
		Amount:     selected.Amount().String(),
		Currency:   selected.Currency(),
		Carrier:    selected.Carrier(),
		Service:    selected.Service(),
		ShipmentID: quote.ShipmentID(),
		RateID:     selected.ID(),
	}, nil
}

func (h PurchaseCheapestLabelCommandHandler) quote(
	ctx context.Context,
	cmd PurchaseCheapestLabelCommand,
) (rate.Quote, error) {
	if err := ctx.Err(); err != nil {
		return rate.Quote{}, newStageError(StageQuote, MessageQuoteFailed, err)
	}

	quote, err := h.provider.CreateShipment(ctx, cmd.Request())
	if err != nil {
		return rate.Quote{}, newStageError(StageQuote, MessageQuoteFailed, err)
	}

	if err = quote.Validate(); err != nil {
		return rate.Quote{}, newStageError(StageQuote, MessageQuoteFailed, fmt.Errorf("%w: %w", ports.ErrMalformedResponse, err))
	}

	return quote, nil
}

func (h PurchaseCheapestLabelCommandHandler) purchase(
	ctx context.Context,
	quote rate.Quote,
	selected rate.Rate,
) (label.Label, error) {
	// Last point at which an abandoned request leaves nothing bought.
	if err := ctx.Err(); err != nil {
		return label.Label{}, newStageError(StagePurchase, MessagePurchaseFailed, err)
	}

	purchased, err := h.provider.PurchaseRate(ctx, quote.ShipmentID(), selected.ID())
	if err != nil {
		return label.Label{}, newStageError(StagePurchase, MessagePurchaseFailed, err)
	}

	if err = purchased.Validate(); err != nil {
		return label.Label{}, newStageError(StagePurchase, MessagePurchaseFailed, fmt.Errorf("%w: %w", ports.ErrMalformedResponse, err))
	}

	return purchased, nil
}

func (h PurchaseCheapestLabelCommandHandler) fail(log *zap.Logger, err error) error {
	var labelErr *LabelPurchaseError
	if !errors.As(err, &labelErr) {
		labelErr = &LabelPurchaseError{Stage: StageUnknown, Message: err.Error(), Cause: err}
	}

	fields := []zap.Field{
		zap.String("stage", labelErr.Stage.String()),
		zap.String("message", labelErr.Message),
		zap.Error(labelErr.Cause),
	}
	if labelErr.StatusCode != 0 {
		fields = append(fields, zap.Int("status", labelErr.StatusCode))
	}

	if labelErr.Stage == StageConfig {
		log.Error("label purchase failed", fields...)
	} else {
		log.Warn("label purchase failed", fields...)
	}

	return labelErr
}

func fallbackMessage(stage Stage) string {
	switch stage {
	case StageConfig:
		return messageConfigurationPrefix + "invalid provider settings"
	case StageSelection:
		return MessageNoRatesFound
	case StagePurchase:
		return MessagePurchaseFailed
	default:
		return MessageQuoteFailed
	}
}
