package cmd

import (
	"fmt"

	"github.com/cmccomb/structural-shapes/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of structural-shapes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("structural-shapes v%s\n", version.Version)
		fmt.Println("Cross-Section Property Calculator")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
