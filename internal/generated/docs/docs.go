// Package docs publishes the embedded OpenAPI document through swag so that
// echo-swagger can serve it. Import it for its side effect.
package docs

import (
	"shiplabel/internal/generated/servers"

	"github.com/swaggo/swag"
)

type openAPIDoc struct{}

// ReadDoc returns the API document as JSON, or an empty document when the
// embedded one cannot be loaded.
func (openAPIDoc) ReadDoc() string {
	doc, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}

	b, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

func init() {
	swag.Register(swag.Name, openAPIDoc{})
}
