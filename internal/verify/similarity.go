package verify

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Similarity returns a normalized string-closeness ratio in [0,1],
// case-insensitive. It is the classic difflib sequence-matcher ratio:
// twice the number of matching characters over the total length. Equal
// strings score 1.0; empty input scores 0.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	m := difflib.NewMatcher(splitChars(strings.ToLower(a)), splitChars(strings.ToLower(b)))
	return m.Ratio()
}

// splitChars splits a string into single-rune elements for the matcher,
// which operates on sequences.
func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}
