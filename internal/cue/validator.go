// Package cue validates user-supplied threshold override files against an
// embedded CUE schema before they are merged over the built-in table.
package cue

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a schema validation error.
type ValidationError struct {
	File    string
	Message string
}

// Validator handles CUE validation.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas loads all CUE schema files from the embedded filesystem.
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}

		// thresholds.cue -> thresholds
		schemaName := entry.Name()[:len(entry.Name())-4]
		v.schemas[schemaName] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}

	return nil
}

// ValidateThresholds validates a decoded threshold override map against
// the thresholds schema: string keys mapped to positive numbers.
func (v *Validator) ValidateThresholds(data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas["thresholds"]
	if !ok {
		// Schema not loaded; fall back to Go-side validation.
		return nil, nil
	}
	return v.validateAgainstSchema(schema, data, "Thresholds")
}

// validateAgainstSchema checks that data unifies with the named schema
// definition.
func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, defName string) ([]ValidationError, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	def := schema.LookupPath(cue.ParsePath("#" + defName))
	if !def.Exists() {
		return nil, nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(err), nil
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err), nil
	}

	return nil, nil
}

func extractErrors(err error) []ValidationError {
	return []ValidationError{{
		Message: fmt.Sprintf("Schema validation failed: %v", err),
	}}
}
