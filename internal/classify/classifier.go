// Package classify maps measured artifact sizes to three-level verdicts
// using a per-category threshold table.
package classify

import (
	"errors"
	"fmt"

	"github.com/dotcommander/perflint/internal/types"
)

// ErrInvalidSize is returned when a caller passes a negative size.
var ErrInvalidSize = errors.New("size must be non-negative")

// DefaultThresholdKB is used for categories absent from the table.
const DefaultThresholdKB = 100.0

// warningMultiplier widens the ideal threshold into the warning band.
// Sizes above threshold*warningMultiplier need improvement.
const warningMultiplier = 1.5

// Table maps a category (artifact name for HTML/CSS files, lower-cased
// extension for assets) to its ideal size in KB.
type Table map[string]float64

// DefaultTable returns the built-in ideal size table.
func DefaultTable() Table {
	return Table{
		// Named artifacts
		"index.html": 50,
		"styles.css": 100,

		// Markup and stylesheet extensions
		".html": 50,
		".css":  100,

		// Asset extensions
		".jpg":  200,
		".jpeg": 200,
		".png":  200,
		".gif":  500,
		".svg":  50,
		".webp": 100,
		".ico":  50,
	}
}

// Merge returns a copy of t with entries from override applied on top.
func (t Table) Merge(override Table) Table {
	merged := make(Table, len(t)+len(override))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// Classifier classifies sizes against a fixed table. The table is set at
// construction; it cannot be changed per call.
type Classifier struct {
	table Table
}

// NewClassifier creates a Classifier. A nil table uses the defaults.
func NewClassifier(table Table) *Classifier {
	if table == nil {
		table = DefaultTable()
	}
	return &Classifier{table: table}
}

// Threshold returns the ideal size in KB for a category, falling back to
// DefaultThresholdKB for unknown categories.
func (c *Classifier) Threshold(category string) float64 {
	if t, ok := c.table[category]; ok {
		return t
	}
	return DefaultThresholdKB
}

// Classify maps a measured size to a verdict:
// sizeKB <= threshold is good, sizeKB <= 1.5*threshold is a warning,
// anything larger needs improvement. Negative sizes are a caller contract
// violation and return ErrInvalidSize.
func (c *Classifier) Classify(category string, sizeKB float64) (types.Verdict, error) {
	if sizeKB < 0 {
		return "", fmt.Errorf("classify %q (%.2f KB): %w", category, sizeKB, ErrInvalidSize)
	}

	threshold := c.Threshold(category)
	switch {
	case sizeKB <= threshold:
		return types.VerdictGood, nil
	case sizeKB <= threshold*warningMultiplier:
		return types.VerdictWarning, nil
	default:
		return types.VerdictNeedsImprovement, nil
	}
}
