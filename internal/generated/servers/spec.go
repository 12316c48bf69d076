package servers

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
var openapiYAML []byte

var (
	loadOnce sync.Once
	document *openapi3.T
	docJSON  []byte
	loadErr  error

	registerOnce sync.Once
)

// GetSwagger returns the validated API document.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openapiYAML)
		if err != nil {
			loadErr = fmt.Errorf("load openapi document: %w", err)
			return
		}
		if err = doc.Validate(context.Background()); err != nil {
			loadErr = fmt.Errorf("validate openapi document: %w", err)
			return
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			loadErr = fmt.Errorf("encode openapi document: %w", err)
			return
		}
		document, docJSON = doc, raw
	})
	return document, loadErr
}

// SwaggerJSON returns the API document rendered as JSON.
func SwaggerJSON() ([]byte, error) {
	if _, err := GetSwagger(); err != nil {
		return nil, err
	}
	return docJSON, nil
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	raw, err := SwaggerJSON()
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// RegisterSwagger makes the document available to echo-swagger under swag.Name.
// Repeated calls are no-ops.
func RegisterSwagger() error {
	if _, err := GetSwagger(); err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
	return nil
}
