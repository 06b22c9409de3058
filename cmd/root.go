package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gosaf/internal/config"
	"gosaf/internal/log"
	"gosaf/internal/profile"
	"gosaf/internal/version"
)

// cfg is loaded once before any command runs.
var cfg config.AppConfig

var rootCmd = &cobra.Command{
	Use:   "gosaf",
	Short: "Structural profile geometry and SAF model toolkit",
	Long: `gosaf - structural profile geometry toolkit

A CLI tool for working with parametric structural cross-section
profiles and structural-analysis interchange models.

This tool helps structural engineers:
  - Look up standard profiles (CHS, RHS/SHS, UNP, LNP, flats)
  - Compute boundary polygons and derived section quantities
  - Derive corroded profiles with reduced dimensions
  - Plot cross-sections to PNG/SVG/PDF
  - Validate interchange model files (nodes, members, materials)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosaf v%-49s║\n", version.Version)
		fmt.Println("  ║   Structural Profile Geometry Toolkit                     ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Parametric cross-section profiles and interchange models.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Standard profile catalogs (CHS, RHS, SHS, UNP, LNP, FL)")
		fmt.Println("    • Boundary polygons with area, perimeter and centroid")
		fmt.Println("    • Corrosion transform with feasibility checks")
		fmt.Println("    • Cross-section diagrams (terminal, PNG, SVG, PDF)")
		fmt.Println("    • Interchange model validation")
		fmt.Println()
		fmt.Println("  Use 'gosaf --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: config not loaded: %v\n", err)
		cfg = config.Defaults()
	}
	log.Init(log.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	profile.SetSegmentAngle(cfg.Geometry.SegmentAngle)
}
