package cmd

import (
	"fmt"
	"os"

	"github.com/cmccomb/structural-shapes/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "structural-shapes",
	Short: "Cross-Section Property Calculator",
	Long: `structural-shapes - Cross-Section Property Calculator

A CLI tool for computing the geometric properties of the
cross-sections used to size beams and shafts.

This tool helps structural engineers compute:
  - Area, centroid, and second moments of area
  - Polar moment of inertia for torsion problems
  - Properties of composite (built-up or hollowed) sections
  - Bending and torsional stress at a chosen fiber

Supported shapes: rod, pipe, rectangle, box-beam, i-beam,
and arbitrary polygons inside composite definitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   structural-shapes v%-37s║\n", version.Version)
		fmt.Println("  ║   Cross-Section Property Calculator                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing the geometric properties of the")
		fmt.Println("  cross-sections used to size beams and shafts.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Area, centroid, and second moments of primitive shapes")
		fmt.Println("    • Composite sections assembled from JSON definitions")
		fmt.Println("    • Bending and torsional stress at a chosen fiber")
		fmt.Println("    • Property sweeps over a dimension range")
		fmt.Println("    • ASCII sketches and PNG/SVG/PDF section diagrams")
		fmt.Println()
		fmt.Println("  Use 'structural-shapes --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
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
}
