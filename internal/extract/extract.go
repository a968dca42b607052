package extract

import (
	"strings"

	"github.com/matsen/citecheck/internal/doi"
)

// NoTextError is the diagnostic used when a document yields no
// extractable text (scanned or image-only PDFs).
const NoTextError = "no text could be extracted (document may be scanned or image-based)"

// FromText runs the extraction pipeline over a document's plain text:
// locate the references section, segment it into numbered citations,
// parse each citation's fields, and collect every DOI in the document.
func FromText(fullText string, totalPages int) Result {
	if strings.TrimSpace(fullText) == "" {
		return Failed(totalPages, NoTextError)
	}

	refText, found := FindReferencesSection(fullText)
	if !found {
		// No recognizable bibliography; scan the whole document.
		refText = fullText
	}

	// DOIs are collected from the references section and from the full
	// document: inline DOIs sometimes appear outside the bibliography.
	allDOIs := mergeDOIs(doi.Extract(refText), doi.Extract(fullText))

	entries := Segment(refText)

	var citations []Citation
	if len(entries) > 0 {
		for _, e := range entries {
			citations = append(citations, buildCitation(e, allDOIs))
		}
	} else {
		// Citations could not be individually parsed; report each DOI as
		// its own single-field citation.
		for i, d := range allDOIs {
			citations = append(citations, Citation{
				Number: i + 1,
				Text:   "DOI: " + d,
				DOI:    d,
			})
		}
	}

	return Result{
		Success:    true,
		TotalPages: totalPages,
		Citations:  citations,
		DOIsFound:  allDOIs,
	}
}

// Failed builds a failed Result with empty citation and DOI lists.
func Failed(totalPages int, errMsg string) Result {
	return Result{
		TotalPages: totalPages,
		Error:      errMsg,
	}
}

func buildCitation(e Entry, allDOIs []string) Citation {
	c := Citation{Number: e.Number, Text: e.Text}

	lower := strings.ToLower(e.Text)
	for _, d := range allDOIs {
		if strings.Contains(lower, strings.ToLower(d)) {
			c.DOI = d
			break
		}
	}

	f := ParseFields(e.Text)
	c.Title = f.Title
	c.Authors = f.Authors
	c.Year = f.Year

	if len(c.Text) > MaxCitationTextLen {
		c.Text = c.Text[:MaxCitationTextLen]
	}
	return c
}

// mergeDOIs unions DOI lists preserving first-occurrence order, with
// case-insensitive deduplication.
func mergeDOIs(lists ...[]string) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, d := range list {
			key := strings.ToLower(d)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, d)
		}
	}
	return merged
}
