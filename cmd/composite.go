package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cmccomb/structural-shapes/internal/diagram"
	"github.com/cmccomb/structural-shapes/internal/sectiondef"
	"github.com/cmccomb/structural-shapes/section"
	"github.com/spf13/cobra"
)

var (
	compositeFile     string
	compositeRecenter bool

	// Diagram options
	compositeShowDiagram bool
	compositeExportFile  string
)

var compositeCmd = &cobra.Command{
	Use:   "composite",
	Short: "Compute the properties of a composite section from a JSON file",
	Long: `Build a composite cross-section from a JSON definition and report
its net area, centroid, and moments of inertia.

Members are applied in order: "add" contributes material and "sub"
carves a void. Each member may be placed with an "at" coordinate.

Definition format:
  {
    "name": "drilled plate",
    "members": [
      {"op": "add", "shape": {"type": "rectangle", "width": 4, "height": 2}},
      {"op": "sub", "shape": {"type": "rod", "radius": 0.25}, "at": {"x": 1, "y": 0}}
    ]
  }

Shape types: rod, pipe, rectangle, box-beam, i-beam, polygon.

Examples:
  structural-shapes composite --file plate.json
  structural-shapes composite -f girder.json --recenter --diagram -o girder.svg`,
	Run: runComposite,
}

func init() {
	rootCmd.AddCommand(compositeCmd)

	compositeCmd.Flags().StringVarP(&compositeFile, "file", "f", "", "Path to composite JSON file [required]")
	compositeCmd.MarkFlagRequired("file")

	compositeCmd.Flags().BoolVar(&compositeRecenter, "recenter", false, "Shift members so the centroid lands on the origin")

	// Diagram options
	compositeCmd.Flags().BoolVar(&compositeShowDiagram, "diagram", false, "Show ASCII section sketch")
	compositeCmd.Flags().StringVarP(&compositeExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runComposite(cmd *cobra.Command, args []string) {
	def, err := sectiondef.LoadFromFile(compositeFile)
	if err != nil {
		fmt.Printf("Error loading definition: %v\n", err)
		return
	}

	comp, err := def.Build()
	if err != nil {
		fmt.Printf("Error building composite: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COMPOSITE SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if def.Name != "" {
		fmt.Printf("  Section: %s\n", def.Name)
	}
	if def.Description != "" {
		fmt.Printf("  Description: %s\n", def.Description)
	}
	fmt.Println()

	printMembers("MEMBERS:", comp)

	if compositeRecenter {
		if err := comp.Recenter(); err != nil {
			fmt.Printf("Error recentering: %v\n", err)
			return
		}
		printMembers("MEMBERS (recentered):", comp)
	}

	fmt.Println("NET PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Net area:\t%.6g\n", comp.Area())
	fmt.Fprintf(w, "  Moment of inertia Ix:\t%.6g\n", comp.MomentOfInertiaX())
	fmt.Fprintf(w, "  Moment of inertia Iy:\t%.6g\n", comp.MomentOfInertiaY())
	fmt.Fprintf(w, "  Polar moment J:\t%.6g\n", comp.PolarMomentOfInertia())
	if cog, err := comp.Centroid(); err != nil {
		fmt.Fprintf(w, "  Centroid:\tundefined (%v)\n", err)
	} else {
		fmt.Fprintf(w, "  Centroid:\t%s\n", cog)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("COMPOSITE PROPERTIES", []string{
		fmt.Sprintf("A  = %.6g", comp.Area()),
		fmt.Sprintf("Ix = %.6g", comp.MomentOfInertiaX()),
		fmt.Sprintf("Iy = %.6g", comp.MomentOfInertiaY()),
		fmt.Sprintf("J  = %.6g", comp.PolarMomentOfInertia()),
	}))
	fmt.Println()

	if compositeShowDiagram {
		fmt.Println(diagram.DrawComposite(comp))
	}

	if compositeExportFile != "" {
		if err := diagram.ExportComposite(comp, compositeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", compositeExportFile)
		}
	}
}

// printMembers prints the signed member table with each member's area
// contribution.
func printMembers(title string, comp *section.Composite) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tOp\tShape\tAt\tArea\n")
	fmt.Fprintf(w, "  ─\t──\t─────\t──\t────\n")
	for i, m := range comp.Members() {
		op := "add"
		if m.Sign < 0 {
			op = "sub"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%+.6g\n",
			i+1, op, m.Shape, m.Shape.Centroid(), m.Sign*m.Shape.Area())
	}
	w.Flush()
	fmt.Println()
}
