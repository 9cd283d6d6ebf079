package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	swaggerOnce sync.Once
	swaggerDoc  *openapi3.T
	swaggerErr  error
)

// GetSwagger parses and validates the embedded OpenAPI document. The result is
// cached; callers must not mutate it.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(rawSpec)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading OpenAPI document: %w", err)
			return
		}
		if err := doc.Validate(context.Background()); err != nil {
			swaggerErr = fmt.Errorf("error validating OpenAPI document: %w", err)
			return
		}
		swaggerDoc = doc
	})
	return swaggerDoc, swaggerErr
}

// SpecJSON renders the embedded document as JSON for /api/schema and Swagger UI.
func SpecJSON() ([]byte, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

type swaggerDocReader struct {
	doc string
}

func (r swaggerDocReader) ReadDoc() string {
	return r.doc
}

var registerOnce sync.Once

// RegisterSwaggerDoc publishes the document in the swag registry that
// echo-swagger reads doc.json from. swag panics on a second registration, so
// only the first call registers.
func RegisterSwaggerDoc() error {
	data, err := SpecJSON()
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDocReader{doc: string(data)})
	})
	return nil
}
