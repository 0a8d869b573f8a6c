package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/jsonapi/pkg/cache"
	"github.com/matzehuels/jsonapi/pkg/observability"
)

// accept is sent on every fetch. Plain JSON endpoints are accepted too;
// the document decoder validates the payload either way.
const accept = "application/vnd.api+json, application/json"

// Fetcher retrieves documents over HTTP with retry and optional caching.
// The zero value fetches with http.DefaultClient, three attempts, and no
// cache.
type Fetcher struct {
	// Client is the HTTP client to use. Nil means http.DefaultClient.
	Client *http.Client

	// Cache stores fetched bodies keyed by URL. Nil disables caching.
	Cache cache.Cache

	// Keyer derives cache keys. Nil means cache.NewDefaultKeyer().
	Keyer cache.Keyer

	// TTL is the cache time-to-live for fetched bodies. 0 means entries
	// never expire.
	TTL time.Duration

	// Attempts is the maximum number of tries per fetch. Values below 1
	// are treated as 3.
	Attempts int

	// Delay is the initial retry backoff. 0 means 1 second.
	Delay time.Duration
}

// Fetch retrieves the body at url. Network failures and 5xx responses are
// retried with exponential backoff; other non-200 statuses fail
// immediately.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	keyer := f.Keyer
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	key := keyer.DocumentKey(url)

	if f.Cache != nil {
		if body, ok, err := f.Cache.Get(ctx, key); err == nil && ok {
			observability.Cache().OnCacheHit(ctx, "document")
			return body, nil
		}
		observability.Cache().OnCacheMiss(ctx, "document")
	}

	attempts := f.Attempts
	if attempts < 1 {
		attempts = 3
	}
	delay := f.Delay
	if delay == 0 {
		delay = time.Second
	}

	var body []byte
	err := Retry(ctx, attempts, delay, func() error {
		var err error
		body, err = f.get(ctx, url)
		return err
	})
	if err != nil {
		return nil, err
	}

	if f.Cache != nil {
		if err := f.Cache.Set(ctx, key, body, f.TTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "document", len(body))
		}
	}
	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RetryableError{Err: fmt.Errorf("GET %s: %s", url, resp.Status)}
	default:
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
