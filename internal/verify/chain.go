package verify

import (
	"context"
	"strings"
	"sync"
)

// VerifyCitation runs the fallback chain for one citation. Each strategy
// runs only when its input is present; the checks are independent, not
// an else-chain, so a citation with authors but no DOI or title still
// gets an author search. The chain short-circuits on the first success.
func (v *Verifier) VerifyCitation(ctx context.Context, q Query) CitationResult {
	var attempted []string
	var errParts []string
	conclusive := true

	record := func(method Method, r Result) {
		attempted = append(attempted, string(method))
		errParts = append(errParts, string(method)+" lookup failed: "+r.Error)
		if !r.NotFound {
			conclusive = false
		}
	}

	if q.DOI != "" {
		r := v.VerifyDOI(ctx, q.DOI)
		if r.Valid {
			return chainSuccess(MethodDOI, ConfidenceDOI, r, append(attempted, string(MethodDOI)))
		}
		record(MethodDOI, r)
	}

	if q.Title != "" {
		r := v.SearchByTitle(ctx, q.Title, q.Year)
		if r.Valid {
			return chainSuccess(MethodTitle, ConfidenceTitle, r, append(attempted, string(MethodTitle)))
		}
		record(MethodTitle, r)
	}

	if len(q.Authors) > 0 {
		r := v.SearchByAuthor(ctx, surname(q.Authors[0]), q.Year, q.Title)
		if r.Valid {
			return chainSuccess(MethodAuthor, ConfidenceAuthor, r, append(attempted, string(MethodAuthor)))
		}
		record(MethodAuthor, r)
	}

	errMsg := "no searchable information provided"
	if len(errParts) > 0 {
		errMsg = strings.Join(errParts, "; ")
	}

	return CitationResult{
		Method:     MethodFailed,
		Confidence: 0.0,
		Attempted:  attempted,
		NotFound:   conclusive && len(attempted) > 0,
		Error:      errMsg,
	}
}

func chainSuccess(method Method, confidence float64, r Result, attempted []string) CitationResult {
	return CitationResult{
		Valid:      true,
		Method:     method,
		Confidence: confidence,
		DOI:        r.DOI,
		Title:      r.Title,
		Authors:    r.Authors,
		Year:       r.Year,
		Journal:    r.Journal,
		Attempted:  attempted,
	}
}

// surname derives a last name from an author string: the text before a
// comma if present ("Smith, J."), otherwise the last whitespace token
// ("J. Smith").
func surname(author string) string {
	if idx := strings.Index(author, ","); idx >= 0 {
		return strings.TrimSpace(author[:idx])
	}
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return author
	}
	return fields[len(fields)-1]
}

// VerifyBatch runs the fallback chain for every query with a bounded
// worker pool. Exactly one result comes back per input, at the input's
// index; a timeout on one citation never aborts its siblings. The
// client's dispatch-interval limiter additionally spaces out requests
// across workers.
func (v *Verifier) VerifyBatch(ctx context.Context, queries []Query) []CitationResult {
	results := make([]CitationResult, len(queries))

	sem := make(chan struct{}, v.maxConcurrent)
	var wg sync.WaitGroup

	for i := range queries {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			// Each goroutine writes only to its own index.
			results[idx] = v.VerifyCitation(ctx, queries[idx])
		}(i)
	}

	wg.Wait()
	return results
}
