package cmd

import (
	"github.com/spf13/cobra"
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Fiber stresses for bending and torsion",
	Long: `Compute the stress at a chosen fiber of a cross-section under a
bending moment or a torque.

Subcommands:
  bending  - Normal stress sigma = M*c/Ix at a fiber c from the x-axis
  torsion  - Shear stress tau = T*r/J at radius r from the section axis

Stresses come out in [force]/[length]² of whatever consistent units the
inputs use.`,
}

func init() {
	rootCmd.AddCommand(stressCmd)
}
