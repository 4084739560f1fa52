package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/perflint/internal/analyzer"
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts <file>",
	Short: "Analyze embedded scripts in a markup document",
	Long: `The scripts command extracts every <script> block from one HTML
document and prints the accumulated metrics: timers, event listeners,
animation frames, and DOM query calls.

A document with no script blocks yields all-zero metrics.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScriptAnalysis(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scriptsCmd)
}

func runScriptAnalysis(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read markup: %w", err)
	}

	m := analyzer.AnalyzeScripts(string(content))

	fmt.Printf("%s\n", path)
	fmt.Printf("  Script blocks:         %d\n", m.ScriptBlockCount)
	fmt.Printf("  Lines:                 %d\n", m.TotalLines)
	fmt.Printf("  addEventListener:      %d\n", m.EventListenerCount)
	fmt.Printf("  setTimeout:            %d\n", m.SetTimeoutCount)
	fmt.Printf("  setInterval:           %d\n", m.SetIntervalCount)
	fmt.Printf("  requestAnimationFrame: %d\n", m.AnimationFrameCount)
	fmt.Printf("  DOM queries:           %d\n", m.DOMQueryCount)
	return nil
}
