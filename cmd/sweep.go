package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cmccomb/structural-shapes/section"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	// Section inputs
	sweepShape string
	sweepDims  shapeDims

	// Sweep inputs
	sweepParam    string
	sweepFrom     float64
	sweepTo       float64
	sweepSteps    int
	sweepProperty string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Plot a section property against one varying dimension",
	Long: `Vary a single dimension of a cross-section over a range and chart how
a property responds. Useful for sizing studies, e.g. how much stiffness
a deeper web buys, or where a thinner pipe wall stops paying off.

Parameters (--param):
  radius, outer-radius, thickness, width, height, web, flange

Properties (--property):
  area, moi-x, moi-y, polar

Examples:
  # Strong-axis stiffness of an I-beam as the flanges thicken
  structural-shapes sweep -s i-beam -W 0.5 -H 0.25 --web 0.025 \
    -p flange --from 0.01 --to 0.1 --property moi-x

  # Area of a pipe as the wall thins
  structural-shapes sweep -s pipe -R 0.25 -p thickness --from 0.01 --to 0.25`,
	Run: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	addShapeFlags(sweepCmd, &sweepShape, &sweepDims)

	sweepCmd.Flags().StringVarP(&sweepParam, "param", "p", "", "Dimension to vary [required]")
	sweepCmd.MarkFlagRequired("param")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "First value of the swept dimension [required]")
	sweepCmd.MarkFlagRequired("from")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "Last value of the swept dimension [required]")
	sweepCmd.MarkFlagRequired("to")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 20, "Number of samples across the range")
	sweepCmd.Flags().StringVar(&sweepProperty, "property", "moi-x", "Property to chart: area, moi-x, moi-y, polar")
}

func runSweep(cmd *cobra.Command, args []string) {
	if sweepSteps < 2 {
		fmt.Println("Error: --steps must be at least 2")
		return
	}

	eval, err := propertyFunc(sweepProperty)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	series := make([]float64, 0, sweepSteps)
	values := make([]float64, 0, sweepSteps)
	for i := 0; i < sweepSteps; i++ {
		value := sweepFrom + (sweepTo-sweepFrom)*float64(i)/float64(sweepSteps-1)

		dims, err := withParam(sweepDims, sweepParam, value)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		s, err := buildShape(sweepShape, dims)
		if err != nil {
			fmt.Printf("Error at %s=%g: %v\n", sweepParam, value, err)
			return
		}

		series = append(series, eval(s))
		values = append(values, value)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DIMENSION SWEEP")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", sweepShape)
	fmt.Fprintf(w, "  Swept dimension:\t%s, %g to %g in %d steps\n", sweepParam, sweepFrom, sweepTo, sweepSteps)
	fmt.Fprintf(w, "  Property:\t%s\n", sweepProperty)
	w.Flush()
	fmt.Println()

	graph := asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Width(56),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", sweepProperty, sweepParam)))
	fmt.Println(graph)
	fmt.Println()

	loIdx, hiIdx := 0, 0
	for i, v := range series {
		if v < series[loIdx] {
			loIdx = i
		}
		if v > series[hiIdx] {
			hiIdx = i
		}
	}

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Minimum:\t%.6g\tat %s = %.6g\n", series[loIdx], sweepParam, values[loIdx])
	fmt.Fprintf(w, "  Maximum:\t%.6g\tat %s = %.6g\n", series[hiIdx], sweepParam, values[hiIdx])
	w.Flush()
	fmt.Println()
}

func propertyFunc(name string) (func(section.Shape) float64, error) {
	switch name {
	case "area":
		return section.Shape.Area, nil
	case "moi-x":
		return section.Shape.MomentOfInertiaX, nil
	case "moi-y":
		return section.Shape.MomentOfInertiaY, nil
	case "polar":
		return section.Shape.PolarMomentOfInertia, nil
	default:
		return nil, fmt.Errorf("unknown property %q (want area, moi-x, moi-y or polar)", name)
	}
}

// withParam returns a copy of dims with the named dimension replaced.
func withParam(dims shapeDims, param string, value float64) (shapeDims, error) {
	switch param {
	case "radius":
		dims.radius = value
	case "outer-radius":
		dims.outerRadius = value
	case "thickness":
		dims.thickness = value
	case "width":
		dims.width = value
	case "height":
		dims.height = value
	case "web":
		dims.web = value
	case "flange":
		dims.flange = value
	default:
		return dims, fmt.Errorf("unknown parameter %q (want radius, outer-radius, thickness, width, height, web or flange)", param)
	}
	return dims, nil
}
