package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shiplabel/internal/core/application/usecases/commands"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/model/shipment"
	"shiplabel/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// HeaderRequestID carries the correlation id of a label request.
const HeaderRequestID = "X-Request-ID"

// PurchaseCheapestLabelHandler is the use case behind POST /api/v1/labels.
type PurchaseCheapestLabelHandler interface {
	Handle(ctx context.Context, cmd commands.PurchaseCheapestLabelCommand) (commands.PurchaseCheapestLabelResult, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	purchaseCheapestLabelHandler PurchaseCheapestLabelHandler
}

// NewServer creates a new HTTP server with the required command handlers.
func NewServer(purchaseCheapestLabelHandler PurchaseCheapestLabelHandler) *Server {
	return &Server{
		purchaseCheapestLabelHandler: purchaseCheapestLabelHandler,
	}
}

// CreateLabel handles POST /api/v1/labels - buys the cheapest label for a shipment.
func (s *Server) CreateLabel(ctx echo.Context, params servers.CreateLabelParams) error {
	requestID := kernel.NewUUID()
	if params.XRequestID != nil {
		id, err := kernel.UUIDFromGoogle(*params.XRequestID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Error: "Invalid X-Request-ID header",
			})
		}
		requestID = id
	}
	ctx.Response().Header().Set(HeaderRequestID, requestID.String())

	var body servers.CreateLabelRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: "Invalid request body",
		})
	}

	request, err := toShipmentRequest(body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: commands.MessageInvalidRequest + ": " + err.Error(),
		})
	}

	cmd, err := commands.NewPurchaseCheapestLabelCommand(requestID, request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error: commands.MessageInvalidRequest + ": " + err.Error(),
		})
	}

	result, err := s.purchaseCheapestLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeLabelPurchaseError(ctx, err)
	}

	response := servers.LabelResponse{
		LabelUrl: result.LabelURL,
		Rate:     result.Amount,
		Currency: result.Currency,
		Carrier:  result.Carrier,
		Service:  result.Service,
	}
	if result.TrackerURL != "" {
		response.TrackerUrl = &result.TrackerURL
	}

	return ctx.JSON(http.StatusOK, response)
}

func writeLabelPurchaseError(ctx echo.Context, err error) error {
	var labelErr *commands.LabelPurchaseError
	if !errors.As(err, &labelErr) {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Error: "Internal server error",
		})
	}

	response := servers.Error{Error: labelErr.Message}
	if stage, ok := toErrorStage(labelErr.Stage); ok {
		response.Stage = &stage
	}

	return ctx.JSON(statusFor(labelErr), response)
}

// statusFor maps a failed purchase to the HTTP status of the answer.
// Provider rejections keep the provider's status; provider faults without one
// become 502, or 504 when the request ran out of time.
func statusFor(err *commands.LabelPurchaseError) int {
	switch err.Stage {
	case commands.StageConfig:
		return http.StatusInternalServerError
	case commands.StageSelection:
		return http.StatusBadRequest
	case commands.StageQuote, commands.StagePurchase:
		if err.StatusCode >= 400 && err.StatusCode <= 599 {
			return err.StatusCode
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func toErrorStage(stage commands.Stage) (servers.ErrorStage, bool) {
	switch stage {
	case commands.StageConfig:
		return servers.Config, true
	case commands.StageQuote:
		return servers.Quote, true
	case commands.StageSelection:
		return servers.Selection, true
	case commands.StagePurchase:
		return servers.Purchase, true
	default:
		return "", false
	}
}

func toShipmentRequest(body servers.CreateLabelRequest) (shipment.Request, error) {
	from, fromErr := shipment.NewAddress(toAddressInput(body.From))
	to, toErr := shipment.NewAddress(toAddressInput(body.To))
	parcel, parcelErr := shipment.NewParcel(
		body.Parcel.Weight,
		body.Parcel.Length,
		body.Parcel.Width,
		body.Parcel.Height,
	)

	if err := errors.Join(wrapField("from", fromErr), wrapField("to", toErr), wrapField("parcel", parcelErr)); err != nil {
		return shipment.Request{}, err
	}

	return shipment.NewRequest(from, to, parcel)
}

func toAddressInput(a servers.Address) shipment.AddressInput {
	in := shipment.AddressInput{
		Street1: a.Street1,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
	}
	if a.Street2 != nil {
		in.Street2 = *a.Street2
	}
	if a.Country != nil {
		in.Country = string(*a.Country)
	}
	return in
}

func wrapField(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}
