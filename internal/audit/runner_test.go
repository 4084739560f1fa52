package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotcommander/perflint/internal/config"
)

// buildProject creates a project whose analyzers produce a known set of
// recommendations: two high (missing will-change, setTimeout without
// requestAnimationFrame), one medium (setInterval), one low (no WebP).
// Score: 100 - 15 - 15 - 10 - 5 = 55.
func buildProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"index.html": `<html>
<head><link rel="stylesheet" href="styles.css"></head>
<body>
<script>
setTimeout(tick, 16);
setInterval(poll, 1000);
document.querySelector('.card');
</script>
</body>
</html>`,
		"styles.css": `.spinner { animation: spin 1s linear infinite; }
.notice { color: red !important; }`,
		"images/logo.png": "png-bytes",
	}
	for rel, content := range files {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return root
}

func testConfig(root string) *config.Config {
	return &config.Config{Root: root, Format: "console", Quiet: true}
}

func TestRunFullAudit(t *testing.T) {
	root := buildProject(t)

	runner := NewRunner(testConfig(root), RunnerConfig{})
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	r := result.Report
	if r.Score != 55 {
		t.Errorf("Score = %d, want 55", r.Score)
	}
	if !result.Passed {
		t.Error("Passed = false with FailUnder 0, want true")
	}

	want := struct{ total, high, medium, low int }{4, 2, 1, 1}
	if r.Summary.Total != want.total || r.Summary.High != want.high ||
		r.Summary.Medium != want.medium || r.Summary.Low != want.low {
		t.Errorf("Summary = %+v, want %+v", r.Summary, want)
	}

	if r.Stylesheet == nil || r.Scripts == nil || r.Assets == nil {
		t.Fatalf("metrics missing: stylesheet=%v scripts=%v assets=%v",
			r.Stylesheet, r.Scripts, r.Assets)
	}
	if r.Scripts.SetTimeoutCount != 1 || r.Scripts.SetIntervalCount != 1 {
		t.Errorf("script counts = %+v, want one setTimeout and one setInterval", r.Scripts)
	}
	if r.Stylesheet.AnimationCount != 1 || r.Stylesheet.WillChangeCount != 0 {
		t.Errorf("stylesheet counts = %+v, want 1 animation, 0 will-change", r.Stylesheet)
	}
	if r.Assets.TotalCount != 1 {
		t.Errorf("asset count = %d, want 1", r.Assets.TotalCount)
	}

	// index.html and styles.css each get a size record
	if len(r.FileRecords) != 2 {
		t.Errorf("len(FileRecords) = %d, want 2", len(r.FileRecords))
	}
}

func TestRunFailUnderGate(t *testing.T) {
	root := buildProject(t)

	cfg := testConfig(root)
	cfg.FailUnder = 60

	runner := NewRunner(cfg, RunnerConfig{})
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Passed {
		t.Errorf("Passed = true with score %d and FailUnder 60, want false", result.Report.Score)
	}
}

func TestRunWithBaseline(t *testing.T) {
	root := buildProject(t)
	cfg := testConfig(root)

	// First run snapshots the current findings.
	creator := NewRunner(cfg, RunnerConfig{CreateBaseline: true})
	if _, err := creator.Run(); err != nil {
		t.Fatalf("baseline run error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".perflint-baseline.json")); err != nil {
		t.Fatalf("baseline file not written: %v", err)
	}

	// Second run against the baseline suppresses every known finding.
	audited := NewRunner(cfg, RunnerConfig{UseBaseline: true})
	result, err := audited.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.BaselineIgnored != 4 {
		t.Errorf("BaselineIgnored = %d, want 4", result.BaselineIgnored)
	}
	if result.Report.Score != 100 {
		t.Errorf("Score = %d, want 100 after baseline filtering", result.Report.Score)
	}
	if result.Report.Summary.Total != 0 {
		t.Errorf("Summary.Total = %d, want 0", result.Report.Summary.Total)
	}
}

func TestRunStylesheetOnlyProject(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "styles.css"), []byte(".a { color: red; }"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	runner := NewRunner(testConfig(root), RunnerConfig{})
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	r := result.Report
	if r.Stylesheet == nil {
		t.Error("Stylesheet metrics missing for a css-only project")
	}
	if r.Scripts != nil {
		t.Error("Scripts metrics present without markup artifacts")
	}
	if r.Assets != nil {
		t.Error("Assets metrics present without asset artifacts")
	}
	if r.Score != 100 {
		t.Errorf("Score = %d, want 100 for a clean stylesheet", r.Score)
	}
}

func TestRunMissingRoot(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "absent"))
	runner := NewRunner(cfg, RunnerConfig{})
	if _, err := runner.Run(); err == nil {
		t.Error("Run() with missing root: expected error, got nil")
	}
}

func TestRunCustomThresholds(t *testing.T) {
	root := buildProject(t)

	// Drop the .png threshold so logo.png lands past the warning band and
	// the per-asset size rule fires (one extra medium recommendation).
	thresholdFile := filepath.Join(root, "thresholds.yaml")
	if err := os.WriteFile(thresholdFile, []byte(".png: 0.001\n"), 0644); err != nil {
		t.Fatalf("write thresholds: %v", err)
	}

	cfg := testConfig(root)
	cfg.Thresholds = thresholdFile

	runner := NewRunner(cfg, RunnerConfig{})
	result, err := runner.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Report.Summary.Medium != 2 {
		t.Errorf("Summary.Medium = %d, want 2 with tightened .png threshold", result.Report.Summary.Medium)
	}
	if result.Report.Score != 45 {
		t.Errorf("Score = %d, want 45", result.Report.Score)
	}
}
