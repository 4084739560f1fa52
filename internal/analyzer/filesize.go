package analyzer

import (
	"fmt"

	"github.com/dotcommander/perflint/internal/classify"
)

// AnalyzeFileSize classifies a single named artifact against its
// per-artifact threshold, using the artifact name as the category.
func AnalyzeFileSize(name string, sizeKB float64, c *classify.Classifier) (FileSizeRecord, error) {
	verdict, err := c.Classify(name, sizeKB)
	if err != nil {
		return FileSizeRecord{}, fmt.Errorf("file %s: %w", name, err)
	}
	return FileSizeRecord{Name: name, SizeKB: sizeKB, Verdict: verdict}, nil
}

// AnalyzeFileSizes classifies a set of named artifacts in map-independent
// listing order. The names slice fixes the record order.
func AnalyzeFileSizes(names []string, sizeLookup SizeLookup, c *classify.Classifier) ([]FileSizeRecord, error) {
	records := make([]FileSizeRecord, 0, len(names))
	for _, name := range names {
		rec, err := AnalyzeFileSize(name, sizeLookup(name), c)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
