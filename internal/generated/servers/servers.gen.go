// Package servers provides primitives to interact with the openapi HTTP API.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ErrorStage.
const (
	Config    ErrorStage = "Config"
	Purchase  ErrorStage = "Purchase"
	Quote     ErrorStage = "Quote"
	Selection ErrorStage = "Selection"
)

// Defines values for AddressCountry.
const (
	US AddressCountry = "US"
)

// Address defines model for Address.
type Address struct {
	City    string          `json:"city"`
	Country *AddressCountry `json:"country,omitempty"`
	State   string          `json:"state"`
	Street1 string          `json:"street1"`
	Street2 *string         `json:"street2,omitempty"`
	Zip     string          `json:"zip"`
}

// AddressCountry defines model for Address.Country.
type AddressCountry string

// CreateLabelRequest defines model for CreateLabelRequest.
type CreateLabelRequest struct {
	From   Address `json:"from"`
	Parcel Parcel  `json:"parcel"`
	To     Address `json:"to"`
}

// Error defines model for Error.
type Error struct {
	Error string      `json:"error"`
	Stage *ErrorStage `json:"stage,omitempty"`
}

// ErrorStage defines model for Error.Stage.
type ErrorStage string

// LabelResponse defines model for LabelResponse.
type LabelResponse struct {
	Carrier  string `json:"carrier"`
	Currency string `json:"currency"`
	LabelUrl string `json:"labelUrl"`

	// Rate Price as quoted by the provider, e.g. "7.58".
	Rate       string  `json:"rate"`
	Service    string  `json:"service"`
	TrackerUrl *string `json:"trackerUrl,omitempty"`
}

// Parcel defines model for Parcel.
type Parcel struct {
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
	Width  float64 `json:"width"`
}

// CreateLabelParams defines parameters for CreateLabel.
type CreateLabelParams struct {
	// XRequestID Correlation id. Generated when absent and echoed on the response.
	XRequestID *openapi_types.UUID `json:"X-Request-ID,omitempty"`
}

// CreateLabelJSONRequestBody defines body for CreateLabel for application/json ContentType.
type CreateLabelJSONRequestBody = CreateLabelRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Purchase the cheapest label for a shipment
	// (POST /api/v1/labels)
	CreateLabel(ctx echo.Context, params CreateLabelParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateLabel converts echo context to params.
func (w *ServerInterfaceWrapper) CreateLabel(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params CreateLabelParams

	headers := ctx.Request().Header
	// ------------- Optional header parameter "X-Request-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-Request-ID")]; found {
		var XRequestID openapi_types.UUID
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Request-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithLocation("simple", false, "X-Request-ID", runtime.ParamLocationHeader, valueList[0], &XRequestID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Request-ID: %s", err))
		}

		params.XRequestID = &XRequestID
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateLabel(ctx, params)
	return err
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// so handlers can be registered on either.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/labels", wrapper.CreateLabel)
}

//go:embed openapi.yml
var swaggerSpec []byte

// GetSwagger returns the OpenAPI document the handlers above were generated from.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
