// Package report merges analyzer metrics, the score, and the
// recommendation list into one structured report value.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/perflint/internal/analyzer"
	"github.com/dotcommander/perflint/internal/types"
)

// SummaryCounts tallies the recommendation set by priority.
type SummaryCounts struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Report is the complete audit result. Built exactly once per run and
// read-only thereafter. Metrics for artifacts that were absent from the
// project snapshot are nil, not zeroed placeholders.
type Report struct {
	Tool            string                      `json:"tool"`
	Version         string                      `json:"version"`
	GeneratedAt     string                      `json:"generated_at"`
	Score           int                         `json:"score"`
	FileRecords     []analyzer.FileSizeRecord   `json:"file_records,omitempty"`
	Stylesheet      *analyzer.StylesheetMetrics `json:"stylesheet,omitempty"`
	Scripts         *analyzer.ScriptMetrics     `json:"scripts,omitempty"`
	Assets          *analyzer.AssetInventory    `json:"assets,omitempty"`
	Recommendations []types.Recommendation      `json:"recommendations"`
	Summary         SummaryCounts               `json:"summary"`
}

// Version is set at build time via -ldflags.
var Version = "dev"

// Assemble builds the report from already-computed values. Pure
// aggregation apart from the wall-clock timestamp.
func Assemble(fileRecords []analyzer.FileSizeRecord, css *analyzer.StylesheetMetrics, js *analyzer.ScriptMetrics, assets *analyzer.AssetInventory, recs []types.Recommendation, score int) *Report {
	summary := SummaryCounts{Total: len(recs)}
	for _, rec := range recs {
		switch rec.Priority {
		case types.PriorityHigh:
			summary.High++
		case types.PriorityMedium:
			summary.Medium++
		case types.PriorityLow:
			summary.Low++
		}
	}

	return &Report{
		Tool:            "perflint",
		Version:         Version,
		GeneratedAt:     time.Now().Format(time.RFC3339),
		Score:           score,
		FileRecords:     fileRecords,
		Stylesheet:      css,
		Scripts:         js,
		Assets:          assets,
		Recommendations: recs,
		Summary:         summary,
	}
}

// MarshalIndented serializes the report as indented JSON.
func (r *Report) MarshalIndented() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling report: %w", err)
	}
	return data, nil
}

// Load reads a previously persisted JSON report.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report file: %w", err)
	}
	return &r, nil
}
