package remote

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
)

// Sentinel errors returned by the remote client.
var (
	ErrKeyRequired    = errors.New("record key is required")
	ErrUnexpectedCode = errors.New("remote request failed")
)

// Client talks to a Firebase-style REST document store: every record is a JSON
// document addressed as <base>/<key>.json.
type Client struct {
	base   string
	httpc  *http.Client
	logger *zap.Logger
}

// NewClient creates a remote client. A nil httpc gets a client with the configured timeout.
func NewClient(cfg Config, httpc *http.Client, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid remote base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid remote base url: %q", cfg.BaseURL)
	}

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
		base:   base.String(),
		httpc:  httpc,
		logger: logger.Named("remote"),
	}, nil
}

// URL returns the document address for key. An empty key addresses the root document.
func (c *Client) URL(key string) (string, error) {
	return url.JoinPath(c.base, key+".json")
}

// Put creates or replaces the document stored under key with the JSON encoding of v.
func (c *Client) Put(ctx context.Context, key string, v any) error {
	if key == "" {
		return ErrKeyRequired
	}

	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}

	if err := c.do(ctx, http.MethodPut, key, bytes.NewReader(body), nil); err != nil {
		c.logger.Error("Error PUTting record", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Delete removes the document stored under key.
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}

	if err := c.do(ctx, http.MethodDelete, key, nil, nil); err != nil {
		c.logger.Error("Error deleting record", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Get decodes the document stored under key into out. An empty key fetches the root
// document, i.e. the whole collection. A JSON null leaves out untouched.
func (c *Client) Get(ctx context.Context, key string, out any) error {
	if err := c.do(ctx, http.MethodGet, key, nil, out); err != nil {
		c.logger.Error("Error fetching records", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, key string, body io.Reader, out any) error {
	endpoint, err := c.URL(key)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s: %s", ErrUnexpectedCode, method, key, resp.Status)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
