package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"imdbooo/internal/config"
)

const (
	defaultTimeout = 20 * time.Second
	// maxBodyBytes caps a single page; full-credits pages run to a few MB.
	maxBodyBytes = 16 << 20
)

// Fetcher returns the raw text at a URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	status := e.Status
	if status == "" {
		status = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: unexpected status %s", e.URL, status)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// Options configures a Client.
type Options struct {
	Timeout   time.Duration
	RetryMax  int
	Backoff   time.Duration
	ProxyURL  string
	UserAgent string
}

// OptionsFromConfig maps the [fetch] and [site] sections to client options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		Timeout:   time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		RetryMax:  cfg.Fetch.RetryMax,
		Backoff:   250 * time.Millisecond,
		ProxyURL:  cfg.Fetch.ProxyURL,
		UserAgent: cfg.Site.UserAgent,
	}
}

// Client fetches pages over HTTP.
type Client struct {
	http *http.Client
}

// NewClient builds a client. A proxy forces a fresh connection per request.
func NewClient(opts Options) (*Client, error) {
	base := &http.Transport{
		Proxy:                 nil,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
	}

	proxyURL := strings.TrimSpace(opts.ProxyURL)
	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("fetch: parse proxy url: %w", err)
		}
		base.Proxy = http.ProxyURL(u)
		base.DisableKeepAlives = true
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return newClientWithHTTP(&http.Client{
		Transport: &Transport{
			Base:              base,
			RetryMax:          opts.RetryMax,
			UserAgent:         strings.TrimSpace(opts.UserAgent),
			Backoff:           opts.Backoff,
			DisableKeepAlives: base.DisableKeepAlives,
			ua:                globalUA,
		},
		Timeout: timeout,
	}), nil
}

// newClientWithHTTP wraps an existing http.Client.
func newClientWithHTTP(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{http: client}
}

// Fetch performs a GET and returns the body as UTF-8 text.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	if c == nil || c.http == nil {
		return "", errors.New("fetch: client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: build request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("fetch %s: detect charset: %w", rawURL, err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}
	return strings.ToValidUTF8(string(body), "�"), nil
}
