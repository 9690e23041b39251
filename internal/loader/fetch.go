package loader

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/theopenlane/httpsling"
)

// defaultFetchTimeout bounds remote CSV downloads
const defaultFetchTimeout = 30 * time.Second

// Fetcher downloads address lists over HTTP
type Fetcher struct {
	httpClient *http.Client
}

// FetcherOption configures the Fetcher
type FetcherOption func(*Fetcher)

// WithHTTPClient supplies a custom HTTP client for downloads
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// NewFetcher creates a remote CSV fetcher
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultFetchTimeout},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch downloads a CSV from the given URL and extracts the addresses from
// its first column.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts ...Option) ([]string, error) {
	requester := httpsling.MustNew(
		httpsling.URL(url),
		httpsling.Method(http.MethodGet),
		httpsling.WithHTTPClient(f.httpClient),
	)

	var buf bytes.Buffer

	resp, _, err := requester.ReceiveTo(ctx, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	return Read(&buf, opts...)
}
