package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cmccomb/structural-shapes/internal/diagram"
	"github.com/cmccomb/structural-shapes/section"
	"github.com/spf13/cobra"
)

var (
	// Shape selection and dimensions
	propsShape string
	propsDims  shapeDims
	propsAtX   float64
	propsAtY   float64

	// Diagram options
	propsShowDiagram bool
	propsExportFile  string
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Compute the section properties of a primitive shape",
	Long: `Calculate area, centroid, second moments of area, and the polar
moment of inertia for one of the built-in cross-section shapes.

All dimensions are unit-free: feed lengths in any consistent unit and
read areas in that unit squared, moments in it to the fourth power.

Examples:
  # Solid circular rod
  structural-shapes properties --shape rod --radius 1

  # Hollow box girder, 3 wide by 2 tall with 0.25 walls
  structural-shapes properties --shape box-beam --width 3 --height 2 --thickness 0.25

  # I-beam with a terminal sketch and an exported diagram
  structural-shapes properties -s i-beam -W 0.5 -H 0.25 --web 0.025 --flange 0.05 \
      --diagram -o ibeam.png`,
	Run: runProperties,
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
	addShapeFlags(propertiesCmd, &propsShape, &propsDims)

	// Placement of the centroid in the reference frame
	propertiesCmd.Flags().Float64Var(&propsAtX, "at-x", 0, "Centroid x position")
	propertiesCmd.Flags().Float64Var(&propsAtY, "at-y", 0, "Centroid y position")

	// Diagram options
	propertiesCmd.Flags().BoolVar(&propsShowDiagram, "diagram", false, "Show ASCII section sketch")
	propertiesCmd.Flags().StringVarP(&propsExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

// shapeDims carries the dimension flags shared by every shape-building
// command. Each command registers its own copy so flag values never bleed
// between subcommands.
type shapeDims struct {
	radius      float64
	outerRadius float64
	thickness   float64
	width       float64
	height      float64
	web         float64
	flange      float64
}

// addShapeFlags registers the shape selector and dimension flags on cmd.
func addShapeFlags(cmd *cobra.Command, shape *string, dims *shapeDims) {
	cmd.Flags().StringVarP(shape, "shape", "s", "", "Shape kind: rod, pipe, rectangle, box-beam, i-beam [required]")
	cmd.MarkFlagRequired("shape")

	cmd.Flags().Float64VarP(&dims.radius, "radius", "r", 0, "Rod radius")
	cmd.Flags().Float64VarP(&dims.outerRadius, "outer-radius", "R", 0, "Pipe outer radius")
	cmd.Flags().Float64VarP(&dims.thickness, "thickness", "t", 0, "Wall thickness (pipe, box-beam)")
	cmd.Flags().Float64VarP(&dims.width, "width", "W", 0, "Overall width (rectangle, box-beam, i-beam)")
	cmd.Flags().Float64VarP(&dims.height, "height", "H", 0, "Overall height (rectangle, box-beam, i-beam)")
	cmd.Flags().Float64Var(&dims.web, "web", 0, "I-beam web thickness")
	cmd.Flags().Float64Var(&dims.flange, "flange", 0, "I-beam flange thickness")
}

// buildShape constructs the primitive selected by kind from the flag values.
func buildShape(kind string, dims shapeDims) (section.Shape, error) {
	switch kind {
	case "rod":
		return section.NewRod(dims.radius)
	case "pipe":
		return section.NewPipe(dims.outerRadius, dims.thickness)
	case "rectangle", "rect":
		return section.NewRectangle(dims.width, dims.height)
	case "box-beam", "box":
		return section.NewBoxBeam(dims.width, dims.height, dims.thickness)
	case "i-beam", "ibeam":
		return section.NewIBeam(dims.width, dims.height, dims.web, dims.flange)
	default:
		return section.Shape{}, fmt.Errorf("unknown shape %q (use rod, pipe, rectangle, box-beam, or i-beam)", kind)
	}
}

func runProperties(cmd *cobra.Command, args []string) {
	s, err := buildShape(propsShape, propsDims)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	s = s.At(section.Pt(propsAtX, propsAtY))

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", s)
	fmt.Fprintf(w, "  Centroid:\t%s\n", s.Centroid())
	w.Flush()
	fmt.Println()

	printShapeProperties(s)

	if propsShowDiagram {
		fmt.Println(diagram.DrawSection(s))
	}

	if propsExportFile != "" {
		if err := diagram.ExportSection(s, propsExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", propsExportFile)
		}
	}
}

// printShapeProperties prints the property table and summary box.
func printShapeProperties(s section.Shape) {
	lo, hi := s.Bounds()

	fmt.Println("PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.6g\n", s.Area())
	fmt.Fprintf(w, "  Moment of inertia Ix:\t%.6g\n", s.MomentOfInertiaX())
	fmt.Fprintf(w, "  Moment of inertia Iy:\t%.6g\n", s.MomentOfInertiaY())
	fmt.Fprintf(w, "  Polar moment J:\t%.6g\n", s.PolarMomentOfInertia())
	fmt.Fprintf(w, "  Bounds:\t%s to %s\n", lo, hi)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("SECTION PROPERTIES", []string{
		fmt.Sprintf("A  = %.6g", s.Area()),
		fmt.Sprintf("Ix = %.6g", s.MomentOfInertiaX()),
		fmt.Sprintf("Iy = %.6g", s.MomentOfInertiaY()),
		fmt.Sprintf("J  = %.6g", s.PolarMomentOfInertia()),
	}))
	fmt.Println()

	fmt.Println("NOTE:")
	fmt.Println("  Moments are taken about the reference-frame axes. Lengths are")
	fmt.Println("  unit-free: areas come out in units², moments in units⁴.")
	fmt.Println()
}
