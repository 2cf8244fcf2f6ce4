package validate

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/MalithGihan/chart-service/pkg/types"
)

//go:embed schema/*.json
var schemaFS embed.FS

const (
	chartSchemaURL   = "file://schema/chart.schema.json"
	diagramSchemaURL = "file://schema/diagram.schema.json"
)

var (
	once    sync.Once
	chart   *jsonschema.Schema
	diagram *jsonschema.Schema
	loadErr error
)

// InputError reports a request the caller must fix. Anything else is a server fault.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

func inputErrorf(format string, a ...any) error {
	return &InputError{Msg: fmt.Sprintf(format, a...)}
}

// IsInput reports whether err is, or wraps, an InputError.
func IsInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

func load() {
	c := jsonschema.NewCompiler()
	for url, name := range map[string]string{
		chartSchemaURL:   "schema/chart.schema.json",
		diagramSchemaURL: "schema/diagram.schema.json",
	} {
		b, err := schemaFS.ReadFile(name)
		if err != nil {
			loadErr = err
			return
		}
		if err := c.AddResource(url, bytes.NewReader(b)); err != nil {
			loadErr = err
			return
		}
	}
	if chart, loadErr = c.Compile(chartSchemaURL); loadErr != nil {
		return
	}
	diagram, loadErr = c.Compile(diagramSchemaURL)
}

// Chart decodes and checks a wheel chart request body.
func Chart(body []byte) (types.ChartRequest, error) {
	var req types.ChartRequest
	if err := check(body, func() *jsonschema.Schema { return chart }); err != nil {
		return req, err
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, inputErrorf("invalid chart request: %v", err)
	}
	if len(req.Data) != len(req.Categories) {
		return req, inputErrorf("data has %d values but categories has %d labels", len(req.Data), len(req.Categories))
	}
	return req, nil
}

// Diagram decodes and checks an ikigai request body.
func Diagram(body []byte) (types.DiagramRequest, error) {
	var req types.DiagramRequest
	if err := check(body, func() *jsonschema.Schema { return diagram }); err != nil {
		return req, err
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, inputErrorf("invalid diagram request: %v", err)
	}
	return req, nil
}

func check(body []byte, schema func() *jsonschema.Schema) error {
	once.Do(load)
	if loadErr != nil {
		return fmt.Errorf("load request schema: %w", loadErr)
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return inputErrorf("invalid JSON body: %v", err)
	}
	if err := schema().Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return &InputError{Msg: describe(ve)}
		}
		return err
	}
	return nil
}

// describe turns the first leaf of a validation tree into a one-line message.
func describe(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return "invalid data format: " + ve.Message
	}
	return fmt.Sprintf("invalid data format at %s: %s", ve.InstanceLocation, ve.Message)
}
