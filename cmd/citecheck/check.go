package main

import (
	"os"

	"github.com/matsen/citecheck/internal/extract"
	"github.com/matsen/citecheck/internal/pdf"
	"github.com/matsen/citecheck/internal/verify"
	"github.com/spf13/cobra"
)

var checkSkipVerify bool

func init() {
	checkCmd.Flags().BoolVar(&checkSkipVerify, "skip-verify", false, "Extract citations without contacting CrossRef")
	addVerifyFlags(checkCmd.Flags())
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <paper.pdf>",
	Short: "Extract citations from a PDF and verify them against CrossRef",
	Long: `Extract the references section from a PDF, parse it into individual
citations, and verify each one against the CrossRef registry.

Each citation gets one of four outcomes:
  verified      a registry record matched (by DOI, title, or author)
  not_found     every lookup ran and the registry has no such record
  error         verification could not complete (timeouts, API failures)
  unverifiable  nothing searchable could be parsed from the citation

not_found citations are the suspect ones: the registry was reachable and
conclusively does not know them. The exit code is 4 when any citation is
not_found, 0 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// CheckReport is the response for the check command.
type CheckReport struct {
	File       string            `json:"file"`
	TotalPages int               `json:"total_pages"`
	Summary    CheckSummary      `json:"summary"`
	Citations  []CheckedCitation `json:"citations"`
}

// CheckSummary counts citations by outcome.
type CheckSummary struct {
	Total        int `json:"total"`
	Verified     int `json:"verified"`
	NotFound     int `json:"not_found"`
	Errors       int `json:"errors"`
	Unverifiable int `json:"unverifiable"`
}

// CheckedCitation pairs one extracted citation with its verification.
type CheckedCitation struct {
	Number       int                    `json:"number,omitempty"`
	Text         string                 `json:"text"`
	Outcome      string                 `json:"outcome,omitempty"`
	Verification *verify.CitationResult `json:"verification,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	text, pages, err := pdf.ExtractText(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading PDF: %v", err)
	}

	result := extract.FromText(text, pages)
	if !result.Success {
		exitWithError(ExitDataError, "extracting citations: %s", result.Error)
	}

	report := CheckReport{
		File:       args[0],
		TotalPages: result.TotalPages,
		Summary:    CheckSummary{Total: len(result.Citations)},
	}

	for _, c := range result.Citations {
		report.Citations = append(report.Citations, CheckedCitation{
			Number: c.Number,
			Text:   c.Text,
		})
	}

	if checkSkipVerify {
		return outputCheckReport(report)
	}

	v, cleanup := buildVerifier(cfg)
	defer cleanup()

	queries := make([]verify.Query, len(result.Citations))
	for i, c := range result.Citations {
		queries[i] = verify.Query{
			DOI:     c.DOI,
			Title:   c.Title,
			Authors: c.Authors,
			Year:    c.Year,
		}
	}

	results := v.VerifyBatch(cmd.Context(), queries)
	for i := range results {
		r := results[i]
		report.Citations[i].Verification = &r
		report.Citations[i].Outcome = r.Outcome()
		switch r.Outcome() {
		case verify.OutcomeVerified:
			report.Summary.Verified++
		case verify.OutcomeNotFound:
			report.Summary.NotFound++
		case verify.OutcomeError:
			report.Summary.Errors++
		case verify.OutcomeUnverifiable:
			report.Summary.Unverifiable++
		}
	}

	if err := outputCheckReport(report); err != nil {
		return err
	}
	if report.Summary.NotFound > 0 {
		os.Exit(ExitSuspect)
	}
	return nil
}

func outputCheckReport(report CheckReport) error {
	if !humanOutput {
		return outputJSON(report)
	}

	outputHuman("%s: %d pages, %d citations\n", report.File, report.TotalPages, report.Summary.Total)
	for _, c := range report.Citations {
		marker := " "
		switch c.Outcome {
		case verify.OutcomeVerified:
			marker = "+"
		case verify.OutcomeNotFound:
			marker = "!"
		case verify.OutcomeError:
			marker = "?"
		case verify.OutcomeUnverifiable:
			marker = "-"
		}
		outputHuman("%s [%d] %s\n", marker, c.Number, truncateString(oneLine(c.Text), citationPreviewLen))
		if c.Verification != nil && c.Verification.Valid {
			outputHuman("      matched via %s (%.1f): %s\n",
				c.Verification.Method, c.Verification.Confidence, c.Verification.Title)
		}
		if c.Verification != nil && c.Verification.Error != "" {
			outputHuman("      %s\n", c.Verification.Error)
		}
	}
	outputHuman("\n%d verified, %d not found, %d errors, %d unverifiable\n",
		report.Summary.Verified, report.Summary.NotFound,
		report.Summary.Errors, report.Summary.Unverifiable)
	if report.Summary.NotFound > 0 {
		outputHuman("Citations marked ! were not found in CrossRef and may be fabricated.\n")
	}
	return nil
}
