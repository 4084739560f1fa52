// Package thresholds loads user threshold overrides for the size
// classifier from a YAML file.
package thresholds

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dotcommander/perflint/internal/classify"
	"github.com/dotcommander/perflint/internal/cue"
)

// Load reads a YAML threshold override file, validates it against the
// embedded CUE schema, and returns the built-in table with the overrides
// applied. An empty path returns the default table.
func Load(path string) (classify.Table, error) {
	if path == "" {
		return classify.DefaultTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read thresholds file: %w", err)
	}

	var raw map[string]any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse thresholds file %s: %w", path, err)
	}

	if errs, err := validate(raw); err != nil {
		return nil, err
	} else if len(errs) > 0 {
		return nil, fmt.Errorf("invalid thresholds file %s: %s", path, errs[0].Message)
	}

	override := make(classify.Table, len(raw))
	for category, value := range raw {
		kb, err := toKB(value)
		if err != nil {
			return nil, fmt.Errorf("invalid threshold for %q: %w", category, err)
		}
		override[category] = kb
	}

	return classify.DefaultTable().Merge(override), nil
}

func validate(raw map[string]any) ([]cue.ValidationError, error) {
	v := cue.NewValidator()
	if err := v.LoadSchemas(); err != nil {
		// Schemas unavailable; toKB still enforces positive numbers.
		return nil, nil
	}
	return v.ValidateThresholds(raw)
}

func toKB(value any) (float64, error) {
	var kb float64
	switch n := value.(type) {
	case int:
		kb = float64(n)
	case float64:
		kb = n
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
	if kb <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", kb)
	}
	return kb, nil
}
