package analyzer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dotcommander/perflint/internal/classify"
)

// SizeLookup resolves an asset name to its measured size in KB.
type SizeLookup func(name string) float64

// AnalyzeAssets classifies each asset by its extension-specific size
// threshold and aggregates totals. Names are processed in listing order.
// The running size sum is rounded to 2 decimals once at the end to avoid
// compounding per-item rounding error. Empty input yields an empty
// inventory, not an error.
func AnalyzeAssets(names []string, sizeLookup SizeLookup, c *classify.Classifier) (AssetInventory, error) {
	inv := AssetInventory{Records: []AssetRecord{}}

	var total float64
	for _, name := range names {
		ext := strings.ToLower(filepath.Ext(name))
		sizeKB := sizeLookup(name)

		verdict, err := c.Classify(ext, sizeKB)
		if err != nil {
			return AssetInventory{}, fmt.Errorf("asset %s: %w", name, err)
		}

		inv.Records = append(inv.Records, AssetRecord{
			Name:      name,
			SizeKB:    sizeKB,
			Extension: ext,
			Verdict:   verdict,
		})
		total += sizeKB
	}

	inv.TotalCount = len(inv.Records)
	inv.TotalSizeKB = round2(total)
	return inv, nil
}
