package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/perflint/internal/audit"
	"github.com/dotcommander/perflint/internal/config"
	"github.com/dotcommander/perflint/internal/outputters"
)

var (
	rootPath       string
	quiet          bool
	verbose        bool
	outputFormat   string
	outputFile     string
	failUnder      int
	thresholdsFile string
	useBaseline    bool
	createBaseline bool
	baselinePath   string
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "perflint",
	Short: "Perflint - a static performance auditor for web-frontend projects",
	Long: `Perflint statically inspects a web-frontend project (HTML entry point,
stylesheet, test pages, and asset directory) and produces a heuristic
performance score plus a ranked list of improvement recommendations.

By default, perflint audits the whole project. Use specialized commands to
inspect a single artifact type.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAudit(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Project root directory (auto-detected if not specified)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVarP(&thresholdsFile, "thresholds", "t", "", "YAML file with size threshold overrides")
	rootCmd.Flags().IntVar(&failUnder, "fail-under", 0, "Exit non-zero when the score falls below this value")
	rootCmd.Flags().BoolVar(&useBaseline, "baseline", false, "Ignore recommendations recorded in the baseline file")
	rootCmd.Flags().BoolVar(&createBaseline, "create-baseline", false, "Record current recommendations as the baseline")
	rootCmd.Flags().StringVar(&baselinePath, "baseline-file", "", "Baseline file path (default .perflint-baseline.json)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("thresholds", rootCmd.PersistentFlags().Lookup("thresholds"))
	viper.BindPFlag("failUnder", rootCmd.Flags().Lookup("fail-under"))
}

func initConfig() {
	configPaths := []string{".perflintrc.json", ".perflintrc.yaml", ".perflintrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				exitFunc(1)
			}
			break
		}
	}
}

func runAudit() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	runner := audit.NewRunner(cfg, audit.RunnerConfig{
		UseBaseline:    useBaseline,
		CreateBaseline: createBaseline,
		BaselinePath:   baselinePath,
	})

	result, err := runner.Run()
	if err != nil {
		return err
	}

	if result.BaselineIgnored > 0 && !cfg.Quiet {
		fmt.Printf("%d baseline recommendations ignored\n", result.BaselineIgnored)
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(result.Report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if !result.Passed {
		fmt.Fprintf(os.Stderr, "Score %d is below fail-under threshold %d\n", result.Report.Score, cfg.FailUnder)
		exitFunc(1)
	}

	return nil
}
