package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)

	// Four-digit years in [1900,2099].
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// Title enclosed in straight or curly double quotes.
	quotedTitlePattern = regexp.MustCompile(`["\x{201C}\x{201D}]([^"\x{201C}\x{201D}]+)["\x{201C}\x{201D}]`)

	// APA-style "(2020). Title." — text after the parenthesized year up
	// to the sentence boundary, allowing one embedded period.
	afterYearPattern = regexp.MustCompile(`\(\d{4}\)\.\s*([^.]+(?:\.[^.]+)?)`)

	sentencePattern = regexp.MustCompile(`[.?!]\s+`)

	// "Surname, F." with comma and initials, i.e. an author list rather
	// than a title.
	authorListPattern = regexp.MustCompile(`^[A-Z][a-z]+,\s*[A-Z]\.`)

	// "Surname, F." or "Surname, F. M."
	surnameFirstPattern = regexp.MustCompile(`[A-Z][a-z]+,?\s+[A-Z]\.(?:\s*[A-Z]\.)?`)

	// "F. Surname" or "First Surname".
	initialFirstPattern = regexp.MustCompile(`[A-Z]\.?\s+[A-Z][a-z]+`)
)

// maxAuthors caps the number of authors extracted from one citation.
const maxAuthors = 10

// minSentenceTitleLen is the minimum length for a sentence segment to be
// considered a title by the last-resort strategy.
const minSentenceTitleLen = 30

// minYearOffset guards the author-section truncation: a year found this
// early in the text is more likely a stray number than the publication
// year, so the whole text is searched for authors instead.
const minYearOffset = 10

// titleStrategies are tried in order; the first non-empty result wins.
var titleStrategies = []func(string) string{
	titleFromQuotes,
	titleAfterYear,
	titleFromSentences,
}

// ParseFields extracts best-effort title, authors, and year from one
// citation's raw text. Every rule is a heuristic over irregular citation
// styles; absent fields are a normal outcome, not an error.
func ParseFields(text string) Fields {
	var f Fields
	if text == "" {
		return f
	}

	text = whitespacePattern.ReplaceAllString(strings.TrimSpace(text), " ")

	// First 4-digit year wins: citation text usually lists the
	// publication year before any page-range or access-date years.
	if m := yearPattern.FindString(text); m != "" {
		f.Year, _ = strconv.Atoi(m)
	}

	for _, strategy := range titleStrategies {
		if title := strategy(text); title != "" {
			f.Title = title
			break
		}
	}

	f.Authors = parseAuthors(text, f.Year)
	return f
}

func titleFromQuotes(text string) string {
	if m := quotedTitlePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func titleAfterYear(text string) string {
	if m := afterYearPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// titleFromSentences picks the first sentence-like segment long enough to
// be a title, skipping all-caps segments and ones that look like an
// author list.
func titleFromSentences(text string) string {
	for _, sent := range sentencePattern.Split(text, -1) {
		if len(sent) <= minSentenceTitleLen || isAllUpper(sent) {
			continue
		}
		if authorListPattern.MatchString(sent) {
			continue
		}
		return strings.TrimSpace(sent)
	}
	return ""
}

// parseAuthors extracts author names from the portion of the citation
// before the year, which is where most citation styles put the byline.
func parseAuthors(text string, year int) []string {
	section := text
	if year != 0 {
		if pos := strings.Index(text, strconv.Itoa(year)); pos > minYearOffset {
			section = text[:pos]
		}
	}

	if names := findAuthors(surnameFirstPattern, section); names != nil {
		return names
	}
	return findAuthors(initialFirstPattern, section)
}

func findAuthors(p *regexp.Regexp, section string) []string {
	matches := p.FindAllString(section, maxAuthors)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSpace(m)
	}
	return names
}

// isAllUpper reports whether s contains letters and none of them are
// lower case, mirroring the behavior of an "is upper case" string test.
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
