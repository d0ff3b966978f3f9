package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cmccomb/structural-shapes/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	// Section inputs
	bendShape string
	bendDims  shapeDims

	// Loading inputs
	bendMoment float64
	bendFiber  float64
)

var stressBendingCmd = &cobra.Command{
	Use:   "bending",
	Short: "Normal stress at a fiber under a bending moment",
	Long: `Calculate the bending stress sigma = M*c/Ix at a fiber a distance c
from the x-axis, with the moment applied about the strong (x) axis.

When --fiber is omitted the extreme fiber is used, giving the peak
stress in the section.

Examples:
  # Peak stress in an I-beam girder under M = 1000
  structural-shapes stress bending -s i-beam -W 0.5 -H 0.25 --web 0.025 --flange 0.05 -m 1000

  # Stress at a specific fiber of a rectangular joist
  structural-shapes stress bending -s rectangle -W 0.2 -H 0.3 -m 10 --fiber 0.1`,
	Run: runStressBending,
}

func init() {
	stressCmd.AddCommand(stressBendingCmd)
	addShapeFlags(stressBendingCmd, &bendShape, &bendDims)

	stressBendingCmd.Flags().Float64VarP(&bendMoment, "moment", "m", 0, "Applied bending moment about the x-axis [required]")
	stressBendingCmd.MarkFlagRequired("moment")
	stressBendingCmd.Flags().Float64Var(&bendFiber, "fiber", 0, "Fiber distance from the x-axis (default: extreme fiber)")
}

func runStressBending(cmd *cobra.Command, args []string) {
	s, err := buildShape(bendShape, bendDims)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fiber := bendFiber
	if !cmd.Flags().Changed("fiber") {
		lo, hi := s.Bounds()
		fiber = math.Max(math.Abs(lo.Y), math.Abs(hi.Y))
	}

	moi := s.MomentOfInertiaX()
	stress := bendMoment * fiber / moi

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BENDING STRESS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", s)
	fmt.Fprintf(w, "  Moment M:\t%.6g\n", bendMoment)
	fmt.Fprintf(w, "  Fiber c:\t%.6g\n", fiber)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area:\t%.6g\n", s.Area())
	fmt.Fprintf(w, "  Moment of inertia Ix:\t%.6g\n", moi)
	if fiber != 0 {
		fmt.Fprintf(w, "  Section modulus Ix/c:\t%.6g\n", moi/fiber)
	}
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("BENDING STRESS", []string{
		fmt.Sprintf("sigma = M*c/Ix = %.6g", stress),
	}))
	fmt.Println()

	fmt.Println("NOTE:")
	fmt.Println("  Stress comes out in [force]/[length]² of the input units.")
	fmt.Println()
}
