// Package schema validates Valet payloads against JSON Schema documents.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"
)

const resourceURL = "mem://valet/schema.json"

//go:embed observations.schema.json
var observationsSchema []byte

var ErrInvalidJSON = errors.New("payload is not valid JSON")

// Validator checks payloads against a schema compiled once at construction. Safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
	logger logrus.FieldLogger
}

// Validate reports whether payload conforms to the schema. The reason of a rejection is logged at debug.
func (v *Validator) Validate(payload []byte) bool {
	if err := v.ValidateErr(payload); err != nil {
		v.logger.WithError(err).Debug("Payload rejected by schema")
		return false
	}
	return true
}

// ValidateErr returns nil for a conforming payload, otherwise the reason it was rejected.
func (v *Validator) ValidateErr(payload []byte) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after document", ErrInvalidJSON)
	}
	return v.schema.Validate(doc)
}

// New compiles schemaJSON. A malformed schema is reported here rather than on first use.
func New(schemaJSON []byte, logger logrus.FieldLogger) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(resourceURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Validator{schema: compiled, logger: logger}, nil
}

// NewObservations compiles the bundled schema of the observations endpoint.
func NewObservations(logger logrus.FieldLogger) (*Validator, error) {
	return New(observationsSchema, logger)
}
