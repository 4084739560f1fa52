// Package analyzer provides the four static analyzers that inspect
// web-frontend artifacts. Pattern detection is lexical (substring and
// regular-expression counting), not AST-based; it tolerates false
// positives and negatives by design of the scoring heuristics.
package analyzer

import (
	"math"
	"strings"

	"github.com/dotcommander/perflint/internal/types"
)

// FileSizeRecord holds the measured size and verdict for one scanned
// artifact.
type FileSizeRecord struct {
	Name    string        `json:"name"`
	SizeKB  float64       `json:"size_kb"`
	Verdict types.Verdict `json:"verdict"`
}

// StylesheetMetrics holds the counters produced by a stylesheet scan.
// The counters are independent scans over the same text; overlapping
// matches across categories are expected and not deduplicated.
type StylesheetMetrics struct {
	TotalLines           int `json:"total_lines"`
	TotalRules           int `json:"total_rules"`
	MediaQueryCount      int `json:"media_query_count"`
	KeyframeCount        int `json:"keyframe_count"`
	WillChangeCount      int `json:"will_change_count"`
	TransformCount       int `json:"transform_count"`
	AnimationCount       int `json:"animation_count"`
	TransitionCount      int `json:"transition_count"`
	ComplexSelectorCount int `json:"complex_selector_count"`
	ImportantCount       int `json:"important_count"`
}

// ScriptMetrics holds the counters summed across all embedded script
// blocks found in a markup document.
type ScriptMetrics struct {
	TotalLines          int `json:"total_lines"`
	EventListenerCount  int `json:"event_listener_count"`
	SetTimeoutCount     int `json:"set_timeout_count"`
	SetIntervalCount    int `json:"set_interval_count"`
	AnimationFrameCount int `json:"animation_frame_count"`
	DOMQueryCount       int `json:"dom_query_count"`
	ScriptBlockCount    int `json:"script_block_count"`
}

// AssetRecord describes one entry in the asset inventory.
type AssetRecord struct {
	Name      string        `json:"name"`
	SizeKB    float64       `json:"size_kb"`
	Extension string        `json:"extension"`
	Verdict   types.Verdict `json:"verdict"`
}

// AssetInventory aggregates all classified assets. TotalSizeKB is the sum
// of member sizes rounded to 2 decimal places at aggregation time.
type AssetInventory struct {
	Records     []AssetRecord `json:"records"`
	TotalCount  int           `json:"total_count"`
	TotalSizeKB float64       `json:"total_size_kb"`
}

// CountLines counts newline-delimited segments, including a trailing
// empty segment when the text ends with a newline.
func CountLines(text string) int {
	return len(strings.Split(text, "\n"))
}

// KBFromBytes converts a byte count to KB rounded to 2 decimal places.
func KBFromBytes(b int64) float64 {
	return round2(float64(b) / 1024)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
