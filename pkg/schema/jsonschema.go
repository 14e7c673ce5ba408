package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// JSONSchemaChecker validates documents against a compiled JSON Schema.
type JSONSchemaChecker struct {
	schema *jsonschema.Schema
}

// NewJSONSchemaChecker compiles the schema file at path.
func NewJSONSchemaChecker(path string) (*JSONSchemaChecker, error) {
	compiled, err := jsonschema.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", path, err)
	}
	return &JSONSchemaChecker{schema: compiled}, nil
}

// CompileBytes compiles an in-memory schema document under the given name.
func CompileBytes(name string, data []byte) (*JSONSchemaChecker, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("add schema resource %s: %w", name, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &JSONSchemaChecker{schema: compiled}, nil
}

// Check validates the raw JSON document. Violations carry the leaf causes
// of the validation error with their instance locations.
func (c *JSONSchemaChecker) Check(ctx context.Context, doc []byte) Result {
	if err := ctx.Err(); err != nil {
		return Result{}
	}

	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return Result{Attempted: true, Violations: []Violation{
			{Message: fmt.Sprintf("document is not valid JSON: %v", err)},
		}}
	}

	err := c.schema.Validate(value)
	if err == nil {
		return Result{Attempted: true, Valid: true}
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return Result{Attempted: true, Violations: []Violation{{Message: err.Error()}}}
	}
	return Result{Attempted: true, Violations: leafViolations(ve)}
}

// leafViolations flattens a validation error tree into its most specific
// causes, in reported order.
func leafViolations(ve *jsonschema.ValidationError) []Violation {
	if len(ve.Causes) == 0 {
		return []Violation{{Path: ve.InstanceLocation, Message: ve.Message}}
	}
	var out []Violation
	for _, cause := range ve.Causes {
		out = append(out, leafViolations(cause)...)
	}
	return out
}
