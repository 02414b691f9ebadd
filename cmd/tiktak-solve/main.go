package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	version = "dev" // set by build flags
)

var rootCmd = &cobra.Command{
	Use:   "tiktak-solve",
	Short: "TikTak multistart coordinator for bounded global optimisation",
	Long: `tiktak-solve runs the TikTak multistart algorithm against one of the
benchmark objectives: quasirandom seeding, keep-best filtering, parallel
local refinement, and the cluster-batched pull-toward-incumbent finisher.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tiktak.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(solveCmd)
}

// Commands are defined in separate files:
// - solveCmd in solve.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
