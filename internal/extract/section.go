package extract

import (
	"regexp"
	"strings"

	"github.com/matsen/citecheck/internal/doi"
)

// headerPattern matches common references-section headers. A single
// alternation keeps the search in document order rather than preferring
// one header name over an earlier occurrence of another.
var headerPattern = regexp.MustCompile(`(?i)\b(?:References|Bibliography|Works\s+Cited|Literature\s+Cited|Cited\s+Works)\b`)

// endPattern matches section headers that typically follow the
// bibliography, on their own line.
var endPattern = regexp.MustCompile(`(?i)\n\s*(?:Appendix|Appendices|Supplementary|Acknowledgments?)\s*\n`)

// tailFraction is the portion of the document scanned when no header is
// found: many papers put references in the last 40% of lines.
const tailFraction = 0.6

// minLinesForTail is the minimum document length (in lines) before the
// tail heuristic is attempted.
const minLinesForTail = 50

// FindReferencesSection returns the substring of text most likely to
// contain the bibliography. This is a heuristic: a false positive (e.g. a
// table-of-contents entry reading "References") yields a poor slice, not
// an error, and downstream parsing tolerates it.
func FindReferencesSection(text string) (string, bool) {
	if loc := headerPattern.FindStringIndex(text); loc != nil {
		section := text[loc[0]:]
		if end := endPattern.FindStringIndex(section); end != nil {
			section = section[:end[0]]
		}
		return section, true
	}

	// No header. Fall back to the tail of long documents, but only if it
	// actually contains a DOI; otherwise the caller scans everything.
	lines := strings.Split(text, "\n")
	if len(lines) > minLinesForTail {
		tail := strings.Join(lines[int(float64(len(lines))*tailFraction):], "\n")
		if doi.Contains(tail) {
			return tail, true
		}
	}

	return "", false
}
