package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/perflint/internal/report"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the perflint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("perflint %s\n", report.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
