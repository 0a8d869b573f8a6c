// Package httputil fetches documents from remote HTTP endpoints.
//
// # Overview
//
// This package provides the client-side infrastructure used when reading
// documents from URLs instead of local files:
//
//   - [Fetcher]: HTTP GET with caching and retry
//   - [Retry]: Automatic retry with exponential backoff
//
// # Fetching
//
// [Fetcher] issues GET requests with a JSON:API Accept header, retries
// transient failures, and optionally caches response bodies through a
// [cache.Cache]:
//
//	f := &httputil.Fetcher{
//	    Cache: responseCache,
//	    TTL:   time.Hour,
//	}
//	body, err := f.Fetch(ctx, "https://example.org/articles/1")
//
// A zero Fetcher works without caching and uses http.DefaultClient.
//
// # Retry
//
// [Retry] re-runs an operation for transient failures: network errors and
// 5xx server responses. Only errors wrapped in [RetryableError] trigger a
// retry; anything else aborts immediately. The delay doubles after each
// failed attempt.
//
// Fetch and cache operations report to the observability hooks, so
// consumers can count requests, hits, and misses without this package
// depending on a metrics backend.
package httputil
