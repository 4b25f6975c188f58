// Package http provides the net/http-based implementation of
// televideo.Fetcher used against the Televideo endpoints.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/televideo"
	"golang.org/x/time/rate"
)

const userAgent = "televideo/1.0 (+https://github.com/fwojciec/televideo)"

// Ensure Fetcher implements televideo.Fetcher at compile time.
var _ televideo.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves response bodies over plain HTTP. Each call issues at
// most one request; retries, if desired, are the caller's concern.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets a client-side timeout for requests. By default no
// timeout is imposed beyond the transport's own.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit caps outbound requests at rps per second with no
// bursting, so key-repeat navigation cannot hammer the remote. A rps of
// 0 disables the limiter.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues a single GET request for url and returns the response
// body. Failures map onto the application error codes: non-2xx status to
// ENOTFOUND, transport failures to EUNAVAILABLE, body-read failures to
// EINTERNAL.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, televideo.Errorf(televideo.EUNAVAILABLE, "fetch %s: %v", url, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, televideo.Errorf(televideo.EINVALID, "build request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, televideo.Errorf(televideo.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, televideo.Errorf(televideo.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, televideo.Errorf(televideo.EINTERNAL, "read response from %s: %v", url, err)
	}

	return body, nil
}
