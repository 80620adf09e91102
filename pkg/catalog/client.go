package catalog

import (
	"context"
	"net/http"
	"time"

	"github.com/rattanarit/pythainlp/pkg/errors"
)

// Client fetches the remote catalog document over HTTP.
type Client struct {
	client    *http.Client
	userAgent string
}

// NewClient creates a catalog client with the given timeout and user agent.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if userAgent == "" {
		userAgent = "pythainlp-data/1.0"
	}
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch issues a single GET for the catalog document at rawURL. Transport
// failures and non-2xx responses come back as errors wrapping
// ErrCatalogUnavailable; callers treat a missing catalog as a normal
// negative outcome, not a fault.
func (c *Client) Fetch(ctx context.Context, rawURL string) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCatalogUnavailable, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrCatalogUnavailable, "unexpected status code: %d", resp.StatusCode)
	}

	return ParseDocumentFromReader(resp.Body)
}
