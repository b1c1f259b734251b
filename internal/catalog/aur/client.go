package aur

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ralt/pkgseek/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the AUR RPC endpoint.
const DefaultBaseURL = "https://aur.archlinux.org/rpc/"

// DefaultTimeout bounds a single RPC request.
const DefaultTimeout = 10 * time.Second

// maxResponseSize caps the body read from the RPC endpoint.
const maxResponseSize = 4 << 20

// Fetcher retrieves the raw RPC info response for a package
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTPFetcher queries the AUR RPC v5 info endpoint over HTTP
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher creates a fetcher for baseURL; empty values fall back to defaults.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// Fetch performs the info request for name
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	u, err := url.Parse(f.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	q := u.Query()
	q.Set("v", "5")
	q.Set("type", "info")
	q.Set("arg", name)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
}

// Client resolves AUR package details
type Client struct {
	fetcher Fetcher
}

// NewClient creates a Client backed by fetcher
func NewClient(fetcher Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

// Details fetches and normalizes the details of name. Transport and decode failures
// are reported as not found.
func (c *Client) Details(ctx context.Context, name string) (*models.Details, bool) {
	raw, err := c.fetcher.Fetch(ctx, name)
	if err != nil {
		logrus.Warn(&models.LookupError{Type: models.ErrSourceUnavailable, Package: name, Err: err})
		return nil, false
	}

	d, ok := Normalize(raw)
	if !ok {
		logrus.Debugf("No AUR package in response for %s", name)
		return nil, false
	}
	return d, true
}
