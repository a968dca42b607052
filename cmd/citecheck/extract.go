package main

import (
	"github.com/matsen/citecheck/internal/extract"
	"github.com/matsen/citecheck/internal/pdf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <paper.pdf>",
	Short: "Extract citations from a PDF without verifying them",
	Long: `Extract the references section from a PDF and parse it into
individual citations with any DOI, title, authors, and year found in
each entry. No network requests are made.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, pages, err := pdf.ExtractText(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading PDF: %v", err)
	}

	result := extract.FromText(text, pages)
	if !result.Success {
		exitWithError(ExitDataError, "extracting citations: %s", result.Error)
	}

	if !humanOutput {
		return outputJSON(result)
	}

	outputHuman("%s: %d pages, %d citations, %d DOIs\n",
		args[0], result.TotalPages, len(result.Citations), len(result.DOIsFound))
	for _, c := range result.Citations {
		outputHuman("[%d] %s\n", c.Number, truncateString(oneLine(c.Text), citationPreviewLen))
		if c.Title != "" {
			outputHuman("    title:   %s\n", c.Title)
		}
		if len(c.Authors) > 0 {
			outputHuman("    authors: %s\n", formatAuthors(c.Authors, 3))
		}
		if c.Year != 0 {
			outputHuman("    year:    %d\n", c.Year)
		}
		if c.DOI != "" {
			outputHuman("    doi:     %s\n", c.DOI)
		}
	}
	return nil
}
