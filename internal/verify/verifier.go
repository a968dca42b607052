package verify

import (
	"context"
	"fmt"

	"github.com/matsen/citecheck/internal/cache"
	"github.com/matsen/citecheck/internal/crossref"
	"github.com/matsen/citecheck/internal/doi"
)

const (
	// DefaultTitleThreshold is the minimum similarity for accepting a
	// title-search candidate.
	DefaultTitleThreshold = 0.85

	// DefaultAuthorThreshold is the lower bar used when scoring
	// author-search candidates against a title hint. Author search is
	// a rescue strategy for citations without a confident title, so it
	// accepts looser matches.
	DefaultAuthorThreshold = 0.5

	// DefaultMaxConcurrent bounds the worker pool for batch verification.
	DefaultMaxConcurrent = 4

	// Search row limits and minimum query lengths.
	titleSearchRows  = 5
	authorSearchRows = 10
	minTitleLen      = 10
	minAuthorLen     = 2

	// maxResultAuthors caps authors carried on a result.
	maxResultAuthors = 10
)

// Verifier resolves citations against CrossRef. It is safe for
// concurrent use; each verification call is independent.
type Verifier struct {
	client          *crossref.Client
	cache           *cache.Cache
	titleThreshold  float64
	authorThreshold float64
	maxConcurrent   int
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithCache sets a lookup cache for DOI verification.
func WithCache(c *cache.Cache) Option {
	return func(v *Verifier) { v.cache = c }
}

// WithTitleThreshold overrides the title-match similarity threshold.
func WithTitleThreshold(t float64) Option {
	return func(v *Verifier) { v.titleThreshold = t }
}

// WithAuthorThreshold overrides the author-match similarity threshold.
func WithAuthorThreshold(t float64) Option {
	return func(v *Verifier) { v.authorThreshold = t }
}

// WithMaxConcurrent overrides the batch worker pool size.
func WithMaxConcurrent(n int) Option {
	return func(v *Verifier) {
		if n > 0 {
			v.maxConcurrent = n
		}
	}
}

// New creates a Verifier backed by the given CrossRef client.
func New(client *crossref.Client, opts ...Option) *Verifier {
	v := &Verifier{
		client:          client,
		titleThreshold:  DefaultTitleThreshold,
		authorThreshold: DefaultAuthorThreshold,
		maxConcurrent:   DefaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyDOI checks a single DOI against the registry. The input may
// carry a resolver URL prefix or trailing punctuation; it is normalized
// first. All failures come back as a not-valid Result, never an error.
func (v *Verifier) VerifyDOI(ctx context.Context, rawDOI string) Result {
	cleaned := doi.Normalize(rawDOI)

	if cleaned == "" {
		return Result{DOI: rawDOI, Error: "empty or invalid DOI format"}
	}
	if !doi.IsValid(cleaned) {
		return Result{DOI: rawDOI, Error: fmt.Sprintf("invalid DOI format: %s", cleaned)}
	}

	if v.cache != nil {
		if entry, ok := v.cache.Get(cleaned); ok {
			return v.resultFromCache(cleaned, entry)
		}
	}

	work, err := v.client.GetWork(ctx, cleaned)
	if err != nil {
		r := lookupFailure(cleaned, err)
		if r.NotFound && v.cache != nil {
			_ = v.cache.Put(cleaned, false, nil)
		}
		return r
	}

	if v.cache != nil {
		_ = v.cache.Put(cleaned, true, work)
	}

	r := resultFromWork(work)
	r.DOI = cleaned
	return r
}

// SearchByTitle searches the registry for a work by title, optionally
// constrained to a publication window around year. The best candidate
// is accepted only if its title similarity clears the threshold.
func (v *Verifier) SearchByTitle(ctx context.Context, title string, year int) Result {
	if len(title) < minTitleLen {
		return Result{Error: "title too short for search"}
	}

	works, err := v.client.QueryWorks(ctx, crossref.WorksQuery{
		Title: title,
		Rows:  titleSearchRows,
		Year:  year,
	})
	if err != nil {
		return searchFailure(err)
	}
	if len(works) == 0 {
		return Result{NotFound: true, Error: "no matching titles found in CrossRef"}
	}

	best, bestScore := bestTitleMatch(works, title)
	if best == nil || bestScore < v.titleThreshold {
		return Result{
			NotFound: true,
			Error:    fmt.Sprintf("best title match score %.2f below threshold %.2f", bestScore, v.titleThreshold),
		}
	}

	return resultFromWork(best)
}

// SearchByAuthor searches the registry by author name (preferably a
// surname). Without a title hint a bare author match is never accepted:
// one author has many papers, and auto-accepting the top hit would
// defeat the point of verification.
func (v *Verifier) SearchByAuthor(ctx context.Context, author string, year int, titleHint string) Result {
	if len(author) < minAuthorLen {
		return Result{Error: "author name too short for search"}
	}

	works, err := v.client.QueryWorks(ctx, crossref.WorksQuery{
		Author: author,
		Title:  titleHint,
		Rows:   authorSearchRows,
		Year:   year,
	})
	if err != nil {
		return searchFailure(err)
	}
	if len(works) == 0 {
		return Result{NotFound: true, Error: "no matching authors found in CrossRef"}
	}

	if titleHint != "" {
		if best, score := bestTitleMatch(works, titleHint); best != nil && score >= v.authorThreshold {
			return resultFromWork(best)
		}
	}

	return Result{Error: "author found but cannot confirm specific paper without matching title"}
}

// bestTitleMatch scores every candidate's primary title against the
// query and returns the highest scorer.
func bestTitleMatch(works []crossref.Work, title string) (*crossref.Work, float64) {
	var best *crossref.Work
	bestScore := 0.0
	for i := range works {
		candidate := works[i].PrimaryTitle()
		if candidate == "" {
			continue
		}
		if score := Similarity(title, candidate); score > bestScore {
			bestScore = score
			best = &works[i]
		}
	}
	return best, bestScore
}

// resultFromWork builds a valid Result from registry metadata. A match
// without a title is still a match; the title just stays empty.
func resultFromWork(w *crossref.Work) Result {
	return Result{
		DOI:     w.DOI,
		Valid:   true,
		Title:   w.PrimaryTitle(),
		Authors: w.AuthorNames(maxResultAuthors),
		Year:    w.Year(),
		Journal: w.Journal(),
	}
}

func (v *Verifier) resultFromCache(cleaned string, entry *cache.Entry) Result {
	if !entry.Found {
		return Result{DOI: cleaned, NotFound: true, Error: "DOI not found in CrossRef"}
	}
	r := resultFromWork(entry.Work)
	r.DOI = cleaned
	return r
}

// lookupFailure maps a GetWork error onto a not-valid Result.
func lookupFailure(cleaned string, err error) Result {
	switch {
	case crossref.IsNotFound(err):
		return Result{DOI: cleaned, NotFound: true, Error: "DOI not found in CrossRef"}
	case crossref.IsTimeout(err):
		return Result{DOI: cleaned, Error: "CrossRef API timeout"}
	default:
		return Result{DOI: cleaned, Error: fmt.Sprintf("request failed: %v", err)}
	}
}

// searchFailure maps a QueryWorks error onto a not-valid Result.
func searchFailure(err error) Result {
	if crossref.IsTimeout(err) {
		return Result{Error: "CrossRef search timeout"}
	}
	return Result{Error: fmt.Sprintf("search failed: %v", err)}
}
