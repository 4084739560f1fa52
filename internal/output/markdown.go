package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dotcommander/perflint/internal/recommend"
	"github.com/dotcommander/perflint/internal/report"
	"github.com/dotcommander/perflint/internal/scoring"
	"github.com/dotcommander/perflint/internal/types"
)

// MarkdownFormatter formats the report as Markdown
type MarkdownFormatter struct {
	quiet      bool
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(quiet, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		quiet:      quiet,
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format renders the report as a Markdown document.
func (f *MarkdownFormatter) Format(r *report.Report) error {
	var builder strings.Builder

	// Header
	builder.WriteString("# Perflint Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", r.GeneratedAt))
	builder.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", r.Score, scoring.BandFromScore(r.Score)))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	// Summary table
	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Recommendations | %d |\n", r.Summary.Total))
	builder.WriteString(fmt.Sprintf("| High priority | %d |\n", r.Summary.High))
	builder.WriteString(fmt.Sprintf("| Medium priority | %d |\n", r.Summary.Medium))
	builder.WriteString(fmt.Sprintf("| Low priority | %d |\n", r.Summary.Low))
	builder.WriteString("\n")

	// Recommendations grouped by priority
	builder.WriteString("## Recommendations\n\n")
	if len(r.Recommendations) == 0 {
		builder.WriteString("*No recommendations. Nothing to improve.*\n\n")
	} else {
		groups := recommend.GroupByPriority(r.Recommendations)
		for _, priority := range types.Priorities {
			recs := groups[priority]
			if len(recs) == 0 {
				continue
			}
			builder.WriteString(fmt.Sprintf("### %s\n\n", strings.ToUpper(priority[:1])+priority[1:]))
			for i, rec := range recs {
				builder.WriteString(fmt.Sprintf("%d. **[%s]** %s\n", i+1, rec.Category, rec.Message))
			}
			builder.WriteString("\n")
		}
	}

	// Metrics detail
	f.writeMetrics(&builder, r)

	// Write to file or stdout
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(builder.String()), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		if !f.quiet {
			fmt.Printf("Report written to %s\n", f.outputFile)
		}
		return nil
	}

	fmt.Print(builder.String())
	return nil
}

// writeMetrics appends the per-analyzer metric sections.
func (f *MarkdownFormatter) writeMetrics(builder *strings.Builder, r *report.Report) {
	if len(r.FileRecords) > 0 {
		builder.WriteString("## Files\n\n")
		builder.WriteString("| File | Size (KB) | Verdict |\n")
		builder.WriteString("|------|-----------|--------|\n")
		for _, rec := range r.FileRecords {
			builder.WriteString(fmt.Sprintf("| %s | %.2f | %s |\n", rec.Name, rec.SizeKB, rec.Verdict))
		}
		builder.WriteString("\n")
	}

	if css := r.Stylesheet; css != nil {
		builder.WriteString("## Stylesheet\n\n")
		builder.WriteString(fmt.Sprintf("- Lines: %d\n", css.TotalLines))
		builder.WriteString(fmt.Sprintf("- Rules: %d\n", css.TotalRules))
		builder.WriteString(fmt.Sprintf("- Media queries: %d\n", css.MediaQueryCount))
		builder.WriteString(fmt.Sprintf("- Keyframes: %d\n", css.KeyframeCount))
		builder.WriteString(fmt.Sprintf("- Animations: %d\n", css.AnimationCount))
		builder.WriteString(fmt.Sprintf("- Complex selectors: %d\n", css.ComplexSelectorCount))
		builder.WriteString(fmt.Sprintf("- `!important` usages: %d\n", css.ImportantCount))
		builder.WriteString("\n")
	}

	if js := r.Scripts; js != nil {
		builder.WriteString("## Scripts\n\n")
		builder.WriteString(fmt.Sprintf("- Script blocks: %d\n", js.ScriptBlockCount))
		builder.WriteString(fmt.Sprintf("- Lines: %d\n", js.TotalLines))
		builder.WriteString(fmt.Sprintf("- Event listeners: %d\n", js.EventListenerCount))
		builder.WriteString(fmt.Sprintf("- DOM queries: %d\n", js.DOMQueryCount))
		builder.WriteString("\n")
	}

	if assets := r.Assets; assets != nil {
		builder.WriteString("## Assets\n\n")
		builder.WriteString(fmt.Sprintf("Total: %d files, %.2f KB\n\n", assets.TotalCount, assets.TotalSizeKB))
		if f.verbose && len(assets.Records) > 0 {
			builder.WriteString("| Asset | Size (KB) | Verdict |\n")
			builder.WriteString("|-------|-----------|--------|\n")
			for _, rec := range assets.Records {
				builder.WriteString(fmt.Sprintf("| %s | %.2f | %s |\n", rec.Name, rec.SizeKB, rec.Verdict))
			}
			builder.WriteString("\n")
		}
	}
}
