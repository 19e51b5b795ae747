package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed lectern.schema.json
var embeddedSchemaData []byte

// EmbeddedSchema returns the JSON Schema lectern validates
// configuration files against.
func EmbeddedSchema() []byte {
	return embeddedSchemaData
}

// SchemaValidator checks configuration values against the embedded
// JSON Schema.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the embedded schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("lectern.json", bytes.NewReader(embeddedSchemaData)); err != nil {
		return nil, fmt.Errorf("failed to register config schema: %w", err)
	}
	schema, err := compiler.Compile("lectern.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate checks any JSON-marshalable value against the schema.
// Violations are flattened into one error listing every offending
// location.
func (v *SchemaValidator) Validate(configData interface{}) error {
	// The schema library validates plain JSON values, so round-trip the
	// struct through JSON first.
	raw, err := json.Marshal(configData)
	if err != nil {
		return fmt.Errorf("failed to serialize config for schema check: %w", err)
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("failed to decode config for schema check: %w", err)
	}

	err = v.schema.Validate(value)
	if err == nil {
		return nil
	}
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		return fmt.Errorf("configuration does not match the schema:\n%s",
			strings.Join(flattenCauses(validationErr), "\n"))
	}
	return fmt.Errorf("schema check: %w", err)
}

// flattenCauses walks the validation error tree and renders one line
// per located violation.
func flattenCauses(err *jsonschema.ValidationError) []string {
	var msgs []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if e.InstanceLocation != "" {
			msgs = append(msgs, fmt.Sprintf("- %s: %s", e.InstanceLocation, e.Message))
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(err)
	return msgs
}
