// Package federalregister searches the FederalRegister.gov document registry and decodes its CSV
// export into notices.
package federalregister

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultBaseURL is the registry's document search endpoint
	DefaultBaseURL = "https://www.federalregister.gov/documents/search"

	// MaxRecords is the most rows the registry returns for one CSV search
	MaxRecords = 1000

	// DefaultTimeout bounds a whole search request
	DefaultTimeout = 60 * time.Second

	defaultUserAgent = "frtally"

	// limit on an error body kept for diagnostics
	errorBodyLimit = 512
)

// Client is a FederalRegister.gov document search client
type Client struct {
	baseURL    string
	userAgent  string
	maxRecords int
	http       *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL replaces the search endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout sets the timeout of a whole search request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// WithMaxRecords overrides the registry result cap used to detect truncation
func WithMaxRecords(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRecords = n
		}
	}
}

// New creates a new registry client
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  defaultUserAgent,
		maxRecords: MaxRecords,
		http:       &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildURL returns the CSV search URL for the query against baseURL
func BuildURL(baseURL string, query *model.Query) string {
	params := url.Values{}
	params.Set("format", "csv")
	params.Set("conditions[publication_date][gte]", model.FormatDate(query.From))
	params.Set("conditions[publication_date][lte]", model.FormatDate(query.To))
	params.Set("conditions[term]", `"`+query.Term+`"`)
	for _, t := range query.Types {
		params.Add("conditions[type][]", t.String())
	}
	return baseURL + "?" + params.Encode()
}

// SearchURL returns the URL Search would fetch for the query
func (c *Client) SearchURL(query *model.Query) string {
	return BuildURL(c.baseURL, query)
}

// Search fetches the notices matching the query
func (c *Client) Search(ctx context.Context, query *model.Query) (*model.SearchResult, error) {
	if err := query.Validate(); err != nil {
		return nil, goerr.Wrap(err, "refusing to search with invalid query")
	}

	searchURL := c.SearchURL(query)
	logger := ctxlog.From(ctx)
	logger.Debug("Searching registry", "url", searchURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create registry request",
			goerr.V("url", searchURL),
			goerr.T(model.ErrTagRegistry))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/csv")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "registry request failed",
			goerr.V("url", searchURL),
			goerr.T(model.ErrTagRegistry))
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("Failed to close registry response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, goerr.New("registry returned an error status",
			goerr.V("url", searchURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
			goerr.T(model.ErrTagRegistry))
	}

	notices, err := ParseCSV(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read registry response",
			goerr.V("url", searchURL))
	}

	result := &model.SearchResult{
		URL:       searchURL,
		Notices:   notices,
		Truncated: len(notices) >= c.maxRecords,
	}

	logger.Info("Registry search completed",
		"records", len(notices),
		"truncated", result.Truncated,
		"duration", time.Since(start),
	)

	return result, nil
}

var _ interfaces.Registry = (*Client)(nil)
