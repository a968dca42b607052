// Package crossref is a rate-limited, polite HTTP client for the
// CrossRef works API.
package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the CrossRef REST API base URL.
	DefaultBaseURL = "https://api.crossref.org"

	// DefaultTimeout bounds each individual request.
	DefaultTimeout = 10 * time.Second

	// DefaultMailto is the contact address sent with every request.
	// CrossRef routes requests carrying a mailto into its polite pool,
	// which gets preferential rate limits.
	DefaultMailto = "citecheck@users.noreply.github.com"

	// DefaultDispatchInterval is the minimum spacing between request
	// dispatches, a politeness margin on top of bounded concurrency.
	DefaultDispatchInterval = 100 * time.Millisecond

	// selectFields limits query responses to the fields we decode.
	selectFields = "DOI,title,author,published-print,published-online,created,container-title"
)

// Client is a rate-limited HTTP client for the CrossRef API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithMailto sets the contact address embedded in the User-Agent.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgentFor(mailto)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithDispatchInterval sets the minimum interval between dispatches.
func WithDispatchInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// NewClient creates a new CrossRef API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(DefaultDispatchInterval), 1),
		baseURL:    DefaultBaseURL,
		userAgent:  userAgentFor(DefaultMailto),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func userAgentFor(mailto string) string {
	return fmt.Sprintf("citecheck/1.0 (mailto:%s)", mailto)
}

// GetWork looks up a single work by its DOI. The DOI must already be
// normalized. Returns ErrNotFound for unregistered DOIs.
func (c *Client) GetWork(ctx context.Context, doi string) (*Work, error) {
	body, err := c.doGet(ctx, "/works/"+url.PathEscape(doi), nil)
	if err != nil {
		return nil, err
	}

	var env workEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: parsing work: %v", ErrInvalidResponse, err)
	}

	return &env.Message, nil
}

// WorksQuery describes a query against the works search endpoint.
type WorksQuery struct {
	Title  string // query.title: free-text title query
	Author string // query.author: free-text author query
	Rows   int    // maximum candidates to return
	Year   int    // publication year; results constrained to [Year-1, Year+1]
}

// QueryWorks searches for works matching the query and returns the
// ranked candidates. An empty candidate list is not an error.
func (c *Client) QueryWorks(ctx context.Context, q WorksQuery) ([]Work, error) {
	params := url.Values{}
	if q.Title != "" {
		params.Set("query.title", q.Title)
	}
	if q.Author != "" {
		params.Set("query.author", q.Author)
	}
	if q.Rows > 0 {
		params.Set("rows", strconv.Itoa(q.Rows))
	}
	params.Set("select", selectFields)
	if q.Year != 0 {
		// Widen by a year on each side to absorb print-vs-online
		// publication delays.
		params.Set("filter", fmt.Sprintf("from-pub-date:%d,until-pub-date:%d", q.Year-1, q.Year+1))
	}

	body, err := c.doGet(ctx, "/works", params)
	if err != nil {
		return nil, err
	}

	var env worksListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: parsing query results: %v", ErrInvalidResponse, err)
	}

	return env.Message.Items, nil
}

// doGet performs a rate-limited GET and maps HTTP failures onto the
// package's sentinel errors.
func (c *Client) doGet(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to read
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrInvalidResponse, err)
	}
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
