package output

import (
	"fmt"
	"os"

	"github.com/dotcommander/perflint/internal/report"
)

// JSONFormatter formats the report as JSON
type JSONFormatter struct {
	quiet      bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(quiet bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		quiet:      quiet,
		outputFile: outputFile,
	}
}

// Format serializes the report and writes it to the configured file, or
// stdout when no file is set.
func (f *JSONFormatter) Format(r *report.Report) error {
	jsonBytes, err := r.MarshalIndented()
	if err != nil {
		return err
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		if !f.quiet {
			fmt.Printf("Report written to %s\n", f.outputFile)
		}
		return nil
	}

	fmt.Println(string(jsonBytes))
	return nil
}
