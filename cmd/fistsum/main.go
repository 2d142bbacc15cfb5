// Package main provides the entry point for the fistsum CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccin2p3/fistsum/cmd/fistsum/commands"
	"github.com/ccin2p3/fistsum/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "fistsum",
		Short: "Per-owner usage statistics from fist filesystem inventories",
		Long: `fistsum analyzes a FiST inventory (one filesystem object per line, as
produced by the fist scanner) and produces a per-owner usage report in
JSON, with an optional file-size distribution histogram.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(commands.NewSummaryCommand(&verbose, &quiet))
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "fistsum %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
