// Package extract locates, segments, and parses bibliographic citations
// in the plain text of an academic paper.
package extract

// MaxCitationTextLen bounds the raw citation text kept on a Citation.
// Parsing runs on the full text; only the stored copy is truncated.
const MaxCitationTextLen = 500

// Citation is one reference entry segmented out of a paper.
type Citation struct {
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	DOI     string   `json:"doi,omitempty"`
	Title   string   `json:"title,omitempty"`
	Authors []string `json:"authors,omitempty"`
	Year    int      `json:"year,omitempty"`
}

// Result is the outcome of citation extraction from one document.
// When Success is false, Citations and DOIsFound are empty and Error
// carries the reason.
type Result struct {
	Success    bool       `json:"success"`
	TotalPages int        `json:"total_pages"`
	Citations  []Citation `json:"citations"`
	DOIsFound  []string   `json:"dois_found"`
	Error      string     `json:"error,omitempty"`
}

// Fields holds the heuristically parsed fields of a single citation.
// Any or all may be absent.
type Fields struct {
	Title   string
	Authors []string
	Year    int
}

// Entry is a numbered reference segmented out of a references section.
type Entry struct {
	Number int
	Text   string
}
