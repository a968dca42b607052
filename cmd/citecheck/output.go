package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Citation text truncation length for human-readable listings.
const citationPreviewLen = 80

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// oneLine collapses internal whitespace so citation text prints on one line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// formatAuthors joins author names with "et al." past maxCount.
func formatAuthors(authors []string, maxCount int) string {
	if len(authors) == 0 {
		return ""
	}
	if len(authors) > maxCount {
		return strings.Join(authors[:maxCount], ", ") + ", et al."
	}
	return strings.Join(authors, ", ")
}
