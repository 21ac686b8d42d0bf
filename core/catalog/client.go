package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Sentinel errors returned by Search.
var (
	ErrEmptyTerm      = errors.New("search term is required")
	ErrNotConfigured  = errors.New("catalog api key not configured")
	ErrEmptyResponse  = errors.New("catalog returned an empty response")
	ErrUnexpectedCode = errors.New("catalog request failed")
)

// Result is a single candidate movie returned by the catalog.
type Result struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Client queries the catalog search endpoint.
type Client struct {
	searchURL string
	apiKey    string
	httpc     *http.Client
	logger    *zap.Logger
	inflight  singleflight.Group
}

// NewClient creates a catalog client. A nil httpc gets a client with the configured timeout.
func NewClient(cfg Config, httpc *http.Client, logger *zap.Logger) *Client {
	if httpc == nil {
		timeout := cfg.TimeoutSeconds
		if timeout <= 0 {
			timeout = 15
		}
		httpc = &http.Client{Timeout: time.Duration(timeout) * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		searchURL: cfg.SearchURL,
		apiKey:    strings.TrimSpace(cfg.APIKey),
		httpc:     httpc,
		logger:    logger.Named("catalog"),
	}
}

// Search returns the catalog candidates for term.
// Identical searches running at the same time share one request.
func (c *Client) Search(ctx context.Context, term string) ([]Result, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	// The shared call outlives any single caller; each caller still honours its own ctx.
	shared := context.WithoutCancel(ctx)
	ch := c.inflight.DoChan(term, func() (any, error) {
		return c.search(shared, term)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			c.logger.Error("Error searching for movie", zap.String("term", term), zap.Error(res.Err))
			return nil, res.Err
		}
		results := res.Val.([]Result)
		out := make([]Result, len(results))
		copy(out, results)
		return out, nil
	}
}

func (c *Client) search(ctx context.Context, term string) ([]Result, error) {
	endpoint, err := url.Parse(c.searchURL)
	if err != nil {
		return nil, fmt.Errorf("invalid search url: %w", err)
	}
	q := endpoint.Query()
	q.Set("query", term)
	q.Set("api_key", c.apiKey)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyResponse
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if decoded.Results == nil {
		decoded.Results = []Result{}
	}

	c.logger.Debug("Search completed", zap.String("term", term), zap.Int("results", len(decoded.Results)))
	return decoded.Results, nil
}
