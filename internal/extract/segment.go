package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// A numbering convention locates reference markers like "[1]", "1." at a
// line start, or "(1)". Conventions are tried in fixed priority order and
// the first one yielding enough matches is used exclusively.
type convention struct {
	name   string
	marker *regexp.Regexp

	// noDigitAfter rejects markers immediately followed by a digit.
	// Needed for the dotted convention, where a line starting
	// "10.1145/..." would otherwise split at the DOI.
	noDigitAfter bool
}

var conventions = []convention{
	{name: "bracketed", marker: regexp.MustCompile(`\[(\d+)\]\s*`)},
	{name: "dotted", marker: regexp.MustCompile(`(?m)^(\d+)\.\s*`), noDigitAfter: true},
	{name: "parenthesized", marker: regexp.MustCompile(`\((\d+)\)\s*`)},
}

// minConventionMatches is the confidence floor: a convention with this
// many matches or fewer is rejected as spurious (e.g. a stray "(1)"
// inside prose).
const minConventionMatches = 3

// minEntryLen filters malformed splits: captured text this short or
// shorter is noise, not a citation.
const minEntryLen = 20

// Segment splits references-section text into numbered citation entries.
// It returns nil when no numbering convention clears the confidence
// floor; the caller falls back to reporting raw DOI matches only.
func Segment(text string) []Entry {
	for _, conv := range conventions {
		entries := segmentWith(conv, text)
		if len(entries) > 0 {
			return entries
		}
	}
	return nil
}

// segmentWith applies one convention: each entry runs from its marker to
// the next marker of the same convention or end of input.
func segmentWith(conv convention, text string) []Entry {
	locs := conv.marker.FindAllStringSubmatchIndex(text, -1)

	markers := locs[:0:0]
	for _, loc := range locs {
		if conv.noDigitAfter {
			rest := text[loc[1]:]
			if rest != "" && rest[0] >= '0' && rest[0] <= '9' {
				continue
			}
		}
		markers = append(markers, loc)
	}

	if len(markers) <= minConventionMatches {
		return nil
	}

	var entries []Entry
	for i, loc := range markers {
		num, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}

		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		body := strings.TrimSpace(text[loc[1]:end])
		if len(body) <= minEntryLen {
			continue
		}

		entries = append(entries, Entry{Number: num, Text: body})
	}
	return entries
}
