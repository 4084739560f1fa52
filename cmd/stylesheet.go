package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/perflint/internal/analyzer"
)

var stylesheetCmd = &cobra.Command{
	Use:   "stylesheet <file>",
	Short: "Analyze a single stylesheet for performance patterns",
	Long: `The stylesheet command scans one CSS file and prints its metrics:
rule count, media queries, keyframes, animation-related properties,
complex selectors, and !important usage.

Pattern detection is lexical, not a full CSS parse.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStylesheetAnalysis(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stylesheetCmd)
}

func runStylesheetAnalysis(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read stylesheet: %w", err)
	}

	m := analyzer.AnalyzeStylesheet(string(content))

	fmt.Printf("%s\n", path)
	fmt.Printf("  Lines:             %d\n", m.TotalLines)
	fmt.Printf("  Rules:             %d\n", m.TotalRules)
	fmt.Printf("  Media queries:     %d\n", m.MediaQueryCount)
	fmt.Printf("  Keyframes:         %d\n", m.KeyframeCount)
	fmt.Printf("  will-change:       %d\n", m.WillChangeCount)
	fmt.Printf("  transform:         %d\n", m.TransformCount)
	fmt.Printf("  animation:         %d\n", m.AnimationCount)
	fmt.Printf("  transition:        %d\n", m.TransitionCount)
	fmt.Printf("  Complex selectors: %d\n", m.ComplexSelectorCount)
	fmt.Printf("  !important:        %d\n", m.ImportantCount)
	return nil
}
