package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/perflint/internal/recommend"
	"github.com/dotcommander/perflint/internal/report"
	"github.com/dotcommander/perflint/internal/scoring"
	"github.com/dotcommander/perflint/internal/types"
)

// ConsoleFormatter formats a report for console display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format renders the report to stdout.
func (f *ConsoleFormatter) Format(r *report.Report) error {
	if f.quiet {
		// Only the exit code matters in quiet mode
		return nil
	}

	f.printScore(r)
	f.printRecommendations(r)
	if f.verbose {
		f.printMetrics(r)
	}
	f.printFooter(r)

	return nil
}

// printScore prints the headline score with its qualitative band.
func (f *ConsoleFormatter) printScore(r *report.Report) {
	band := scoring.BandFromScore(r.Score)
	line := fmt.Sprintf("Performance score: %d/100 (%s)", r.Score, band)

	if !f.colorize {
		fmt.Println(line)
		return
	}

	style := lipgloss.NewStyle().Bold(true).Foreground(bandColor(band))
	fmt.Println(style.Render(line))
}

// bandColor maps a score band to a terminal color.
func bandColor(band string) lipgloss.Color {
	switch band {
	case scoring.BandExcellent:
		return lipgloss.Color("10") // green
	case scoring.BandGood:
		return lipgloss.Color("14") // cyan
	case scoring.BandCaution:
		return lipgloss.Color("3") // yellow
	default:
		return lipgloss.Color("9") // red
	}
}

// printRecommendations prints recommendations grouped by priority with
// 1-based indices within each group.
func (f *ConsoleFormatter) printRecommendations(r *report.Report) {
	if len(r.Recommendations) == 0 {
		if f.colorize {
			style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
			fmt.Printf("\n%s\n", style.Render("✓ No recommendations"))
		} else {
			fmt.Println("\n✓ No recommendations")
		}
		return
	}

	groups := recommend.GroupByPriority(r.Recommendations)
	for _, priority := range types.Priorities {
		recs := groups[priority]
		if len(recs) == 0 {
			continue
		}

		fmt.Printf("\n%s priority:\n", f.priorityLabel(priority))
		for i, rec := range recs {
			fmt.Printf("  %d. [%s] %s\n", i+1, rec.Category, rec.Message)
		}
	}
}

// priorityLabel renders a styled, upper-cased priority heading.
func (f *ConsoleFormatter) priorityLabel(priority string) string {
	label := strings.ToUpper(priority)
	if !f.colorize {
		return label
	}

	var style lipgloss.Style
	switch priority {
	case types.PriorityHigh:
		style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")) // red
	case types.PriorityMedium:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
	}
	return style.Render(label)
}

// printMetrics prints the per-analyzer metric records (verbose only).
func (f *ConsoleFormatter) printMetrics(r *report.Report) {
	if len(r.FileRecords) > 0 {
		fmt.Println("\nFiles:")
		for _, rec := range r.FileRecords {
			fmt.Printf("  %s %s (%.2f KB)\n", verdictMark(rec.Verdict), rec.Name, rec.SizeKB)
		}
	}

	if css := r.Stylesheet; css != nil {
		fmt.Printf("\nStylesheet: %d lines, %d rules, %d media queries, %d keyframes, %d !important\n",
			css.TotalLines, css.TotalRules, css.MediaQueryCount, css.KeyframeCount, css.ImportantCount)
	}
	if js := r.Scripts; js != nil {
		fmt.Printf("Scripts: %d blocks, %d lines, %d listeners, %d DOM queries\n",
			js.ScriptBlockCount, js.TotalLines, js.EventListenerCount, js.DOMQueryCount)
	}
	if assets := r.Assets; assets != nil {
		fmt.Printf("Assets: %d files, %.2f KB total\n", assets.TotalCount, assets.TotalSizeKB)
		for _, rec := range assets.Records {
			fmt.Printf("  %s %s (%.2f KB)\n", verdictMark(rec.Verdict), rec.Name, rec.SizeKB)
		}
	}
}

// verdictMark maps a verdict to a status glyph.
func verdictMark(v types.Verdict) string {
	switch v {
	case types.VerdictGood:
		return "✓"
	case types.VerdictWarning:
		return "⚠"
	default:
		return "✗"
	}
}

// printFooter prints the statistics footer.
func (f *ConsoleFormatter) printFooter(r *report.Report) {
	s := r.Summary
	fmt.Printf("\n%d recommendations (%d high, %d medium, %d low)\n",
		s.Total, s.High, s.Medium, s.Low)
}
