// Package verify resolves citations against the CrossRef registry using
// a prioritized fallback chain: DOI lookup, then fuzzy title search,
// then author search.
package verify

// Method names the strategy that produced a verification result.
type Method string

const (
	MethodDOI    Method = "doi"
	MethodTitle  Method = "title"
	MethodAuthor Method = "author"
	MethodFailed Method = "failed"
)

// Fixed per-strategy confidence levels. These rank strategies, they are
// not calibrated probabilities.
const (
	ConfidenceDOI    = 1.0
	ConfidenceTitle  = 0.9
	ConfidenceAuthor = 0.7
)

// Result is the outcome of one lookup or search attempt. Valid is true
// only when the registry confirmed a match; NotFound marks a conclusive
// miss (registry reachable, no such record) as opposed to a transient
// error, a distinction the final report depends on.
type Result struct {
	DOI      string   `json:"doi,omitempty"`
	Valid    bool     `json:"valid"`
	Title    string   `json:"title,omitempty"`
	Authors  []string `json:"authors,omitempty"`
	Year     int      `json:"year,omitempty"`
	Journal  string   `json:"journal,omitempty"`
	NotFound bool     `json:"not_found,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// CitationResult is the outcome of the full fallback chain for one
// citation. Method is the first strategy in priority order that
// succeeded, or "failed". Attempted lists the strategies that ran.
type CitationResult struct {
	Valid      bool     `json:"valid"`
	Method     Method   `json:"method"`
	Confidence float64  `json:"confidence"`
	DOI        string   `json:"doi,omitempty"`
	Title      string   `json:"title,omitempty"`
	Authors    []string `json:"authors,omitempty"`
	Year       int      `json:"year,omitempty"`
	Journal    string   `json:"journal,omitempty"`
	Attempted  []string `json:"attempted,omitempty"`
	NotFound   bool     `json:"not_found,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// Outcome classes for per-citation reporting.
const (
	OutcomeVerified     = "verified"     // some strategy matched
	OutcomeNotFound     = "not_found"    // every attempted strategy conclusively missed
	OutcomeError        = "error"        // could not be checked (transient failure)
	OutcomeUnverifiable = "unverifiable" // nothing to search with
)

// Outcome classifies the chain result for reporting. A citation that the
// registry conclusively does not know (not_found) is evidence of a
// fabricated reference; one that merely could not be checked is not.
func (r CitationResult) Outcome() string {
	switch {
	case r.Valid:
		return OutcomeVerified
	case len(r.Attempted) == 0:
		return OutcomeUnverifiable
	case r.NotFound:
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

// Query is the input to the fallback chain. Any subset of fields may be
// set; each strategy runs only when its required input is present.
type Query struct {
	DOI     string
	Title   string
	Authors []string
	Year    int
}
