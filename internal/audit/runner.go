// Package audit provides the core audit orchestration logic: discover
// artifacts, run the four analyzers, build recommendations, score, and
// assemble the report.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dotcommander/perflint/internal/analyzer"
	"github.com/dotcommander/perflint/internal/baseline"
	"github.com/dotcommander/perflint/internal/classify"
	"github.com/dotcommander/perflint/internal/config"
	"github.com/dotcommander/perflint/internal/discovery"
	"github.com/dotcommander/perflint/internal/project"
	"github.com/dotcommander/perflint/internal/recommend"
	"github.com/dotcommander/perflint/internal/report"
	"github.com/dotcommander/perflint/internal/scoring"
	"github.com/dotcommander/perflint/internal/thresholds"
	"github.com/dotcommander/perflint/internal/types"
)

// RunnerConfig holds configuration for the audit runner.
type RunnerConfig struct {
	UseBaseline    bool
	CreateBaseline bool
	BaselinePath   string
}

// Runner coordinates the audit across all artifact types.
type Runner struct {
	cfg  *config.Config
	opts RunnerConfig
}

// NewRunner creates a new audit runner.
func NewRunner(cfg *config.Config, opts RunnerConfig) *Runner {
	return &Runner{cfg: cfg, opts: opts}
}

// Result holds the outcome of an audit run.
type Result struct {
	Report          *report.Report
	Passed          bool
	BaselineIgnored int
}

// Run executes the full audit workflow.
func (r *Runner) Run() (*Result, error) {
	root, err := r.resolveRoot()
	if err != nil {
		return nil, err
	}

	d := discovery.NewDiscovery(root, r.cfg.FollowSymlinks)
	artifacts, err := d.Discover()
	if err != nil {
		return nil, fmt.Errorf("error discovering artifacts: %w", err)
	}

	table, err := thresholds.Load(r.cfg.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("error loading thresholds: %w", err)
	}
	classifier := classify.NewClassifier(table)

	grouped := discovery.ByType(artifacts)
	markups := append(grouped[discovery.ArtifactMarkup], grouped[discovery.ArtifactTestPage]...)
	stylesheets := grouped[discovery.ArtifactStylesheet]
	assets := grouped[discovery.ArtifactAsset]

	// File-size analysis covers every text artifact found.
	fileRecords, err := analyzeFileSizes(append(markups, stylesheets...), classifier)
	if err != nil {
		return nil, err
	}

	// Each analyzer runs only when its artifact kind exists; a missing
	// artifact is the driver's concern, not an engine error.
	var css *analyzer.StylesheetMetrics
	if len(stylesheets) > 0 {
		m := analyzer.AnalyzeStylesheet(concatContents(stylesheets))
		css = &m
	}

	var js *analyzer.ScriptMetrics
	if len(markups) > 0 {
		m := analyzer.AnalyzeScripts(concatContents(markups))
		js = &m
	}

	var inventory *analyzer.AssetInventory
	if len(assets) > 0 {
		inv, err := analyzeAssets(assets, classifier)
		if err != nil {
			return nil, err
		}
		inventory = &inv
	}

	recs := recommend.Build(cssOrZero(css), scriptsOrZero(js), assetsOrZero(inventory))

	result := &Result{}
	if r.opts.CreateBaseline {
		if err := r.saveBaseline(recs, root); err != nil {
			return nil, err
		}
	} else if r.opts.UseBaseline {
		b, err := r.loadBaseline(root)
		if err != nil && !r.cfg.Quiet {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load baseline: %v\n", err)
		}
		if b != nil {
			recs, result.BaselineIgnored = b.Filter(recs)
		}
	}

	score := scoring.Score(recs)
	result.Report = report.Assemble(fileRecords, css, js, inventory, recs, score)
	result.Passed = score >= r.cfg.FailUnder

	return result, nil
}

// resolveRoot determines the project root, auto-detecting when the
// config does not name one.
func (r *Runner) resolveRoot() (string, error) {
	if r.cfg.Root != "" {
		if _, err := os.Stat(r.cfg.Root); err != nil {
			return "", fmt.Errorf("project root %s: %w", r.cfg.Root, err)
		}
		return r.cfg.Root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return project.FindProjectRoot(cwd)
}

// analyzeFileSizes builds a FileSizeRecord per text artifact, keyed by
// basename so the per-artifact threshold table applies.
func analyzeFileSizes(artifacts []discovery.Artifact, c *classify.Classifier) ([]analyzer.FileSizeRecord, error) {
	records := make([]analyzer.FileSizeRecord, 0, len(artifacts))
	for _, a := range artifacts {
		rec, err := analyzer.AnalyzeFileSize(filepath.Base(a.RelPath), analyzer.KBFromBytes(a.SizeBytes), c)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// analyzeAssets feeds the discovered assets to the inventory analyzer.
func analyzeAssets(assets []discovery.Artifact, c *classify.Classifier) (analyzer.AssetInventory, error) {
	names := make([]string, 0, len(assets))
	sizes := make(map[string]float64, len(assets))
	for _, a := range assets {
		names = append(names, a.RelPath)
		sizes[a.RelPath] = analyzer.KBFromBytes(a.SizeBytes)
	}
	return analyzer.AnalyzeAssets(names, func(name string) float64 { return sizes[name] }, c)
}

// concatContents joins artifact contents in discovery order. The lexical
// analyzers sum counts over the whole text, so joining documents is
// equivalent to analyzing them one by one.
func concatContents(artifacts []discovery.Artifact) string {
	parts := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		parts = append(parts, a.Contents)
	}
	return strings.Join(parts, "\n")
}

// loadBaseline loads the baseline file if present.
func (r *Runner) loadBaseline(root string) (*baseline.Baseline, error) {
	path := r.baselinePath(root)
	if _, err := os.Stat(path); err != nil {
		return nil, nil // File doesn't exist, not an error
	}
	return baseline.Load(path)
}

// saveBaseline snapshots the current recommendations.
func (r *Runner) saveBaseline(recs []types.Recommendation, root string) error {
	b := baseline.Create(recs)
	b.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	path := r.baselinePath(root)
	if err := b.Save(path); err != nil {
		return fmt.Errorf("failed to save baseline: %w", err)
	}

	if !r.cfg.Quiet {
		fmt.Printf("Baseline created: %s (%d recommendations)\n", path, len(b.Fingerprints))
	}
	return nil
}

// The recommendation engine takes concrete metrics records; absent
// analyzers contribute all-zero metrics, which fire no rules.
func cssOrZero(m *analyzer.StylesheetMetrics) analyzer.StylesheetMetrics {
	if m != nil {
		return *m
	}
	return analyzer.StylesheetMetrics{}
}

func scriptsOrZero(m *analyzer.ScriptMetrics) analyzer.ScriptMetrics {
	if m != nil {
		return *m
	}
	return analyzer.ScriptMetrics{}
}

func assetsOrZero(inv *analyzer.AssetInventory) analyzer.AssetInventory {
	if inv != nil {
		return *inv
	}
	return analyzer.AssetInventory{}
}

// baselinePath resolves the baseline file relative to the project root.
func (r *Runner) baselinePath(root string) string {
	path := r.opts.BaselinePath
	if path == "" {
		path = ".perflint-baseline.json"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return path
}
