package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the built-in default scoring weights",
	Run: func(_ *cobra.Command, _ []string) {
		w := engine.DefaultWeights()
		fmt.Printf("%s version: %s\n", app, version)
		fmt.Printf("built-in weights (config may override): skill=%.2f interest=%.2f strength=%.2f\n", w.Skill, w.Interest, w.Strength)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
