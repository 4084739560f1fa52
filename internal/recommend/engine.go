// Package recommend turns analyzer metrics into typed recommendations.
// The engine is a pure builder: it returns a freshly constructed slice
// and never mutates shared state, so the same inputs always produce the
// same ordered recommendation sequence.
package recommend

import (
	"fmt"

	"github.com/dotcommander/perflint/internal/analyzer"
	"github.com/dotcommander/perflint/internal/types"
)

// Rule thresholds. Fixed design constants; changing them changes scores.
const (
	maxComplexSelectors  = 10
	maxImportantUsages   = 5
	maxStylesheetRules   = 500
	maxDOMQueries        = 20
	maxInlineScriptLines = 1000
	maxTotalAssetKB      = 5000
)

// modernAssetExtensions is the set of lightweight raster formats whose
// absence from a non-empty inventory triggers the adoption suggestion.
var modernAssetExtensions = map[string]bool{
	".webp": true,
}

// Build evaluates the fixed rule list against the three metrics records
// and returns the recommendations in rule-evaluation order. Each rule is
// independent and fires at most once, except the per-asset size rule
// which fires once per offending asset.
func Build(css analyzer.StylesheetMetrics, js analyzer.ScriptMetrics, assets analyzer.AssetInventory) []types.Recommendation {
	var recs []types.Recommendation

	add := func(category, priority, message string) {
		recs = append(recs, types.Recommendation{
			Category: category,
			Priority: priority,
			Message:  message,
		})
	}

	// Stylesheet rules
	if css.WillChangeCount < css.AnimationCount {
		add(types.CategoryStylesheet, types.PriorityHigh,
			fmt.Sprintf("Add will-change to animated elements (%d animations, %d will-change declarations)",
				css.AnimationCount, css.WillChangeCount))
	}
	if css.ComplexSelectorCount > maxComplexSelectors {
		add(types.CategoryStylesheet, types.PriorityMedium,
			fmt.Sprintf("Simplify deeply nested selectors (%d selectors with 4+ components)", css.ComplexSelectorCount))
	}
	if css.ImportantCount > maxImportantUsages {
		add(types.CategoryStylesheet, types.PriorityMedium,
			fmt.Sprintf("Reduce !important usage (%d occurrences)", css.ImportantCount))
	}
	if css.TotalRules > maxStylesheetRules {
		add(types.CategoryStylesheet, types.PriorityLow,
			fmt.Sprintf("Remove unused rules to shrink the stylesheet (%d rules)", css.TotalRules))
	}

	// Script rules
	if js.AnimationFrameCount == 0 && js.SetTimeoutCount > 0 {
		add(types.CategoryScript, types.PriorityHigh,
			"Use requestAnimationFrame instead of setTimeout for animations")
	}
	if js.SetIntervalCount > 0 {
		add(types.CategoryScript, types.PriorityMedium,
			fmt.Sprintf("Review setInterval performance impact (%d timers)", js.SetIntervalCount))
	}
	if js.DOMQueryCount > maxDOMQueries {
		add(types.CategoryScript, types.PriorityMedium,
			fmt.Sprintf("Cache DOM lookups in variables (%d queries)", js.DOMQueryCount))
	}
	if js.TotalLines > maxInlineScriptLines {
		add(types.CategoryScript, types.PriorityLow,
			fmt.Sprintf("Move large inline scripts to external files (%d lines)", js.TotalLines))
	}

	// Asset rules
	if assets.TotalSizeKB > maxTotalAssetKB {
		add(types.CategoryAsset, types.PriorityHigh,
			fmt.Sprintf("Optimize images to reduce total asset weight (%.2f KB)", assets.TotalSizeKB))
	}
	for _, rec := range assets.Records {
		if rec.Verdict == types.VerdictNeedsImprovement {
			add(types.CategoryAsset, types.PriorityMedium,
				fmt.Sprintf("Reduce size of %s (%.2f KB)", rec.Name, rec.SizeKB))
		}
	}
	if assets.TotalCount > 0 && !hasModernFormat(assets) {
		add(types.CategoryAsset, types.PriorityLow,
			"Adopt WebP for raster images")
	}

	return recs
}

func hasModernFormat(assets analyzer.AssetInventory) bool {
	for _, rec := range assets.Records {
		if modernAssetExtensions[rec.Extension] {
			return true
		}
	}
	return false
}

// GroupByPriority partitions recommendations into presentation order
// (high, medium, low), preserving relative insertion order within each
// group.
func GroupByPriority(recs []types.Recommendation) map[string][]types.Recommendation {
	groups := make(map[string][]types.Recommendation, len(types.Priorities))
	for _, rec := range recs {
		groups[rec.Priority] = append(groups[rec.Priority], rec)
	}
	return groups
}
