// Package baseline snapshots accepted recommendations so that known,
// deliberately tolerated findings stop deducting from the score.
package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/dotcommander/perflint/internal/types"
)

// Baseline represents a snapshot of known recommendations to ignore.
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool // For fast lookup
}

// Create builds a new baseline from a list of recommendations.
func Create(recs []types.Recommendation) *Baseline {
	fingerprints := make([]string, 0, len(recs))
	index := make(map[string]bool)

	for _, rec := range recs {
		fp := fingerprint(rec)
		if !index[fp] {
			fingerprints = append(fingerprints, fp)
			index[fp] = true
		}
	}

	// Sort for deterministic output
	sort.Strings(fingerprints)

	return &Baseline{
		Version:      "1.0",
		Fingerprints: fingerprints,
		index:        index,
	}
}

// Load reads a baseline from a JSON file.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}

	return &b, nil
}

// Save writes the baseline to a JSON file.
func (b *Baseline) Save(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}

	return nil
}

// IsKnown checks if a recommendation is in the baseline.
func (b *Baseline) IsKnown(rec types.Recommendation) bool {
	if b.index == nil {
		return false
	}
	return b.index[fingerprint(rec)]
}

// Filter returns the recommendations not covered by the baseline,
// preserving order, along with the number filtered out.
func (b *Baseline) Filter(recs []types.Recommendation) ([]types.Recommendation, int) {
	kept := make([]types.Recommendation, 0, len(recs))
	ignored := 0
	for _, rec := range recs {
		if b.IsKnown(rec) {
			ignored++
			continue
		}
		kept = append(kept, rec)
	}
	return kept, ignored
}

// fingerprint creates a stable hash of a recommendation.
// Uses: category + priority + normalized message pattern.
func fingerprint(rec types.Recommendation) string {
	msg := normalizeMessage(rec.Message)
	data := fmt.Sprintf("%s|%s|%s", rec.Category, rec.Priority, msg)

	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// normalizeMessage replaces measured values with placeholders so a
// fingerprint survives small metric drift (an asset growing by a KB still
// matches its accepted recommendation).
func normalizeMessage(msg string) string {
	// Replace decimal sizes and counts with a placeholder
	msg = regexp.MustCompile(`\b\d+(\.\d+)?\b`).ReplaceAllString(msg, `N`)

	// Normalize whitespace
	msg = strings.Join(strings.Fields(msg), " ")

	return msg
}
