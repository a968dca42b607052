// Package doi recognizes and normalizes DOI strings embedded in free text.
package doi

import (
	"regexp"
	"strings"
)

// DOI pattern: 10.XXXX/... where XXXX is the 4-9 digit registrant code.
// The suffix runs until whitespace or a bracket/quote character that never
// appears inside a real DOI.
var pattern = regexp.MustCompile(`(?i)10\.\d{4,9}/[^\s\[\]<>"'{}|\\^` + "`" + `]+`)

// shapePattern is the minimal shape a normalized DOI must have.
var shapePattern = regexp.MustCompile(`^10\.\d{4,}/.+$`)

// entityPattern matches HTML entity artifacts sometimes left behind by
// PDF text extraction (e.g. "&amp;").
var entityPattern = regexp.MustCompile(`&[a-z]+;`)

// trailingPunct is the set of punctuation characters commonly captured
// after a DOI by the regex (sentence periods, closing brackets, quotes).
const trailingPunct = ".,;:)]}'\""

// MinLength is the practical minimum length of a real DOI. Candidates
// shorter than this after cleaning are discarded as noise.
const MinLength = 11

// urlPrefixes are DOI resolver prefixes stripped during normalization.
// Compared case-insensitively.
var urlPrefixes = []string{
	"https://doi.org/",
	"http://doi.org/",
	"https://dx.doi.org/",
	"http://dx.doi.org/",
	"doi:",
}

// Clean strips trailing punctuation and HTML entity artifacts from a DOI
// captured by the pattern. A terminal period that follows digits is part
// of the captured punctuation set and gets stripped; a period inside the
// suffix (e.g. "10.1145/3292500.3330701") is untouched.
func Clean(s string) string {
	s = strings.TrimRight(s, trailingPunct)
	return entityPattern.ReplaceAllString(s, "")
}

// Extract returns all distinct DOIs found in text, in first-occurrence
// order. Deduplication is case-insensitive; the first-seen casing is kept.
func Extract(text string) []string {
	matches := pattern.FindAllString(text, -1)

	var dois []string
	seen := make(map[string]bool)
	for _, m := range matches {
		d := Clean(m)
		if len(d) < MinLength {
			continue
		}
		key := strings.ToLower(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		dois = append(dois, d)
	}
	return dois
}

// Contains reports whether text contains at least one DOI-shaped substring.
func Contains(text string) bool {
	return pattern.MatchString(text)
}

// Normalize prepares a DOI for a registry lookup: trims whitespace,
// strips resolver URL prefixes and the "doi:" scheme, strips trailing
// punctuation, and decodes a percent-encoded slash.
func Normalize(s string) string {
	s = strings.TrimSpace(s)

	lower := strings.ToLower(s)
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(lower, prefix) {
			s = s[len(prefix):]
			break
		}
	}

	s = strings.TrimRight(s, ".,;:)]}")
	s = strings.ReplaceAll(s, "%2F", "/")
	s = strings.ReplaceAll(s, "%2f", "/")

	return s
}

// IsValid reports whether a normalized string has the basic DOI shape
// 10.<4+ digits>/<suffix>.
func IsValid(s string) bool {
	return shapePattern.MatchString(s)
}
