// Package main provides the citecheck CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citecheck",
	Short: "Citation extraction and verification for academic PDFs",
	Long: `citecheck extracts bibliographic citations from academic PDFs and
verifies them against the CrossRef registry.

Verification runs a prioritized fallback chain per citation: DOI lookup,
then fuzzy title search, then author search. A citation the registry
conclusively does not know is flagged as a likely fabricated reference,
distinct from citations that merely could not be checked.

All commands output JSON by default for agent integration.
Use --human flag for human-readable output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
