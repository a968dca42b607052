package main

import (
	"os"

	"github.com/matsen/citecheck/internal/verify"
	"github.com/spf13/cobra"
)

func init() {
	addVerifyFlags(doiCmd.Flags())
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <doi>...",
	Short: "Verify one or more DOIs against CrossRef",
	Long: `Look up each DOI in the CrossRef registry. Resolver URL prefixes
(https://doi.org/...) and trailing punctuation are stripped before the
lookup.

The exit code is 4 when any DOI is conclusively absent from the
registry, 0 when all resolve.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDOI,
}

// DOIReport is the response for the doi command.
type DOIReport struct {
	Results []verify.Result `json:"results"`
}

func runDOI(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	v, cleanup := buildVerifier(cfg)
	defer cleanup()

	report := DOIReport{Results: make([]verify.Result, len(args))}
	anyMissing := false
	for i, arg := range args {
		r := v.VerifyDOI(cmd.Context(), arg)
		report.Results[i] = r
		if r.NotFound {
			anyMissing = true
		}
	}

	if humanOutput {
		for _, r := range report.Results {
			if r.Valid {
				outputHuman("+ %s\n    %s\n    %s (%d), %s\n",
					r.DOI, r.Title, formatAuthors(r.Authors, 3), r.Year, r.Journal)
			} else {
				outputHuman("! %s\n    %s\n", r.DOI, r.Error)
			}
		}
	} else if err := outputJSON(report); err != nil {
		return err
	}

	if anyMissing {
		os.Exit(ExitSuspect)
	}
	return nil
}
