package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves raw bytes for a URL, memoizing responses by URL when
// a cache path is configured.
//
// The backing store is opened and closed per access rather than held for
// the Fetcher's lifetime. The cost is negligible for a tool that fetches
// one page per run, and it keeps the file free for external inspection
// between calls.
type Fetcher struct {
	// cachePath is the SQLite cache file. Empty disables caching.
	cachePath string

	// rest is the HTTP client used for live fetches.
	rest *resty.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the live-fetch timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		f.rest.SetTimeout(timeout)
	}
}

// WithUserAgent sets the User-Agent header for live fetches.
func WithUserAgent(userAgent string) Option {
	return func(f *Fetcher) {
		f.rest.SetHeader("User-Agent", userAgent)
	}
}

// New creates a Fetcher. An empty cachePath disables caching entirely;
// every Get then goes to the network.
func New(cachePath string, opts ...Option) *Fetcher {
	f := &Fetcher{
		cachePath: cachePath,
		rest:      resty.New().SetTimeout(30 * time.Second),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Get returns the raw bytes for the URL.
//
// With a cache configured, a hit is served from the store with no
// network access at all. On a miss the page is fetched live and the
// bytes are stored under the URL key before being returned.
//
// A live fetch must succeed: any non-2xx response is an error with no
// retry and no partial handling. The cache is a development convenience,
// not a resilience layer.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if f.cachePath != "" {
		body, hit, err := f.cacheGet(ctx, url)
		if err != nil {
			return nil, err
		}
		if hit {
			slog.DebugContext(ctx, "using cached page", "url", url)
			return body, nil
		}
	}

	slog.DebugContext(ctx, "fetching page", "url", url)

	resp, err := f.rest.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", url, resp.Status())
	}
	body := resp.Body()

	if f.cachePath != "" {
		if err := f.cachePut(ctx, url, body); err != nil {
			return nil, err
		}
	}

	return body, nil
}

// cacheGet opens the store, looks up the URL, and closes the store.
func (f *Fetcher) cacheGet(ctx context.Context, url string) ([]byte, bool, error) {
	store, err := openPageStore(f.cachePath)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	return store.Get(ctx, url)
}

// cachePut opens the store, writes the entry, and closes the store.
func (f *Fetcher) cachePut(ctx context.Context, url string, body []byte) error {
	store, err := openPageStore(f.cachePath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Put(ctx, url, body)
}
