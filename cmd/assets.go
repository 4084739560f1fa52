package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/perflint/internal/analyzer"
	"github.com/dotcommander/perflint/internal/classify"
	"github.com/dotcommander/perflint/internal/config"
	"github.com/dotcommander/perflint/internal/discovery"
	"github.com/dotcommander/perflint/internal/thresholds"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Inventory and classify project assets by size",
	Long: `The assets command enumerates image assets under the project root,
classifies each against its extension-specific size threshold, and prints
the inventory with aggregate totals.

Supported directories: images/, img/, assets/.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAssetAnalysis(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
}

func runAssetAnalysis() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if cfg.Root == "" {
		cfg.Root, _ = os.Getwd()
	}

	table, err := thresholds.Load(cfg.Thresholds)
	if err != nil {
		return fmt.Errorf("error loading thresholds: %w", err)
	}

	d := discovery.NewDiscovery(cfg.Root, cfg.FollowSymlinks)
	artifacts, err := d.Discover()
	if err != nil {
		return fmt.Errorf("error discovering artifacts: %w", err)
	}

	assets := discovery.ByType(artifacts)[discovery.ArtifactAsset]
	names := make([]string, 0, len(assets))
	sizes := make(map[string]float64, len(assets))
	for _, a := range assets {
		names = append(names, a.RelPath)
		sizes[a.RelPath] = analyzer.KBFromBytes(a.SizeBytes)
	}

	inv, err := analyzer.AnalyzeAssets(names, func(name string) float64 { return sizes[name] }, classify.NewClassifier(table))
	if err != nil {
		return err
	}

	for _, rec := range inv.Records {
		fmt.Printf("  %-10s %-40s %10.2f KB\n", rec.Verdict, rec.Name, rec.SizeKB)
	}
	fmt.Printf("\n%d assets, %.2f KB total\n", inv.TotalCount, inv.TotalSizeKB)
	return nil
}
