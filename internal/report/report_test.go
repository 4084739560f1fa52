package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dotcommander/perflint/internal/analyzer"
	"github.com/dotcommander/perflint/internal/types"
)

func sampleRecommendations() []types.Recommendation {
	return []types.Recommendation{
		{Category: types.CategoryStylesheet, Priority: types.PriorityHigh, Message: "Add will-change to animated elements"},
		{Category: types.CategoryScript, Priority: types.PriorityMedium, Message: "Review setInterval performance impact (2 timers)"},
		{Category: types.CategoryAsset, Priority: types.PriorityMedium, Message: "Reduce size of images/huge.jpg (3000.00 KB)"},
		{Category: types.CategoryAsset, Priority: types.PriorityLow, Message: "Adopt WebP for raster images"},
	}
}

func TestAssembleSummaryCounts(t *testing.T) {
	recs := sampleRecommendations()

	r := Assemble(nil, nil, nil, nil, recs, 55)

	if r.Score != 55 {
		t.Errorf("Score = %d, want 55", r.Score)
	}
	want := SummaryCounts{Total: 4, High: 1, Medium: 2, Low: 1}
	if r.Summary != want {
		t.Errorf("Summary = %+v, want %+v", r.Summary, want)
	}
	if r.GeneratedAt == "" {
		t.Error("GeneratedAt is empty, want RFC3339 timestamp")
	}
	if r.Tool != "perflint" {
		t.Errorf("Tool = %q, want perflint", r.Tool)
	}
}

func TestAssembleAbsentMetricsStayNil(t *testing.T) {
	r := Assemble(nil, nil, nil, nil, nil, 100)

	if r.Stylesheet != nil || r.Scripts != nil || r.Assets != nil {
		t.Errorf("absent metrics must remain nil, got stylesheet=%v scripts=%v assets=%v",
			r.Stylesheet, r.Scripts, r.Assets)
	}
	if r.Summary.Total != 0 {
		t.Errorf("Summary.Total = %d, want 0", r.Summary.Total)
	}
}

func TestReportJSONRoundTrip(t *testing.T) {
	css := &analyzer.StylesheetMetrics{TotalLines: 120, TotalRules: 40, AnimationCount: 2}
	js := &analyzer.ScriptMetrics{ScriptBlockCount: 2, SetTimeoutCount: 3}
	assets := &analyzer.AssetInventory{
		Records: []analyzer.AssetRecord{
			{Name: "images/a.png", SizeKB: 120.5, Extension: ".png", Verdict: types.VerdictGood},
		},
		TotalCount:  1,
		TotalSizeKB: 120.5,
	}
	files := []analyzer.FileSizeRecord{
		{Name: "index.html", SizeKB: 12.34, Verdict: types.VerdictGood},
	}
	recs := sampleRecommendations()

	original := Assemble(files, css, js, assets, recs, 55)

	data, err := original.MarshalIndented()
	if err != nil {
		t.Fatalf("MarshalIndented() error = %v", err)
	}

	var restored Report
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if restored.Score != original.Score {
		t.Errorf("restored Score = %d, want %d", restored.Score, original.Score)
	}
	if !reflect.DeepEqual(restored.Recommendations, original.Recommendations) {
		t.Errorf("recommendation ordering changed across round trip:\noriginal: %+v\nrestored: %+v",
			original.Recommendations, restored.Recommendations)
	}
	if !reflect.DeepEqual(restored.Summary, original.Summary) {
		t.Errorf("restored Summary = %+v, want %+v", restored.Summary, original.Summary)
	}
	if !reflect.DeepEqual(restored.Stylesheet, original.Stylesheet) {
		t.Errorf("restored Stylesheet = %+v, want %+v", restored.Stylesheet, original.Stylesheet)
	}
	if !reflect.DeepEqual(restored.Assets, original.Assets) {
		t.Errorf("restored Assets = %+v, want %+v", restored.Assets, original.Assets)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	r := Assemble(nil, nil, nil, nil, sampleRecommendations(), 55)

	data, err := r.MarshalIndented()
	if err != nil {
		t.Fatalf("MarshalIndented() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing report: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Score != r.Score {
		t.Errorf("loaded Score = %d, want %d", loaded.Score, r.Score)
	}
	if !reflect.DeepEqual(loaded.Recommendations, r.Recommendations) {
		t.Errorf("loaded recommendations differ from original")
	}
}
