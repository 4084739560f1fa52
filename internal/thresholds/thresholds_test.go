package thresholds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dotcommander/perflint/internal/classify"
)

func writeThresholds(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing thresholds file: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	table, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	defaults := classify.DefaultTable()
	if len(table) != len(defaults) {
		t.Errorf("len(table) = %d, want %d", len(table), len(defaults))
	}
	if table["index.html"] != defaults["index.html"] {
		t.Errorf("table[index.html] = %v, want %v", table["index.html"], defaults["index.html"])
	}
}

func TestLoadMergesOverrides(t *testing.T) {
	path := writeThresholds(t, ".png: 300\n\"index.html\": 25\n.avif: 150\n")

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if table[".png"] != 300 {
		t.Errorf("table[.png] = %v, want 300", table[".png"])
	}
	if table["index.html"] != 25 {
		t.Errorf("table[index.html] = %v, want 25", table["index.html"])
	}
	if table[".avif"] != 150 {
		t.Errorf("table[.avif] = %v, want 150", table[".avif"])
	}
	// Untouched defaults survive the merge
	if table[".svg"] != classify.DefaultTable()[".svg"] {
		t.Errorf("table[.svg] = %v, want default", table[".svg"])
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative value", ".png: -5\n"},
		{"non-numeric value", ".png: big\n"},
		{"malformed yaml", ": : :\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeThresholds(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) expected error, got nil", tt.content)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on missing file: expected error, got nil")
	}
}
