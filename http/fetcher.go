// Package http provides the HTTP transport for the scraper: a retrying
// implementation of praticagem.Fetcher and the REST server that exposes the
// extracted movements.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/marcusvs/praticagem"
	"golang.org/x/time/rate"
)

// Fetcher defaults. The pilotage site is occasionally slow or briefly
// unreachable, so a handful of attempts with a cool-down between them is
// enough to ride out most blips.
const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultMaxAttempts  = 3
	DefaultBackoff      = 2 * time.Second
)

// DefaultUserAgent identifies the scraper to the remote site. The site
// rate-limits anonymous clients, so every request declares who is asking.
const DefaultUserAgent = "praticagem-bot/1.0 (+https://github.com/marcusvs/praticagem)"

// Ensure Fetcher implements praticagem.Fetcher at compile time.
var _ praticagem.Fetcher = (*Fetcher)(nil)

// SleepFunc pauses between retry attempts. The context lets a pause be cut
// short by cancellation.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Fetcher retrieves the movement page over HTTP with bounded retry.
// Transient failures (timeouts, connection errors, non-2xx responses) are
// retried up to the attempt limit with a fixed backoff between attempts; a
// malformed URL fails immediately since retrying cannot fix configuration.
//
// A Fetcher holds no per-call state and is safe for concurrent use.
type Fetcher struct {
	url         string
	client      *http.Client
	timeout     time.Duration
	maxAttempts int
	backoff     time.Duration
	userAgent   string
	limiter     *rate.Limiter
	sleep       SleepFunc
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout. Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxAttempts sets the total number of attempts per Fetch call.
// Values below 1 are clamped to 1. Defaults to DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(f *Fetcher) {
		if n < 1 {
			n = 1
		}
		f.maxAttempts = n
	}
}

// WithBackoff sets the pause between adjacent attempts. Negative values are
// clamped to zero. Defaults to DefaultBackoff.
func WithBackoff(d time.Duration) Option {
	return func(f *Fetcher) {
		if d < 0 {
			d = 0
		}
		f.backoff = d
	}
}

// WithUserAgent overrides the declared client identification string.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter rate-limits attempts against the remote site. The limiter is
// waited on before every attempt, including retries.
func WithLimiter(l *rate.Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// WithSleep substitutes the pause primitive used between attempts.
// Tests inject a recording no-op so the retry schedule can be asserted
// without real delays.
func WithSleep(sleep SleepFunc) Option {
	return func(f *Fetcher) {
		f.sleep = sleep
	}
}

// NewFetcher creates a Fetcher for the given movement page URL.
func NewFetcher(pageURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		url:         pageURL,
		timeout:     DefaultFetchTimeout,
		maxAttempts: DefaultMaxAttempts,
		backoff:     DefaultBackoff,
		userAgent:   DefaultUserAgent,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the movement page HTML. It returns EINVALID without
// consuming any attempt when the configured URL is malformed, and
// EUNAVAILABLE carrying the attempt count and last cause once every allowed
// attempt has failed transiently.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	parsed, err := url.Parse(f.url)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", praticagem.Errorf(praticagem.EINVALID, "invalid praticagem URL %q", f.url)
	}

	var lastErr error
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		html, err := f.fetchOnce(ctx)
		if err == nil {
			return html, nil
		}
		lastErr = err

		// Caller-initiated abort, not a transient site failure.
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if attempt == f.maxAttempts {
			break
		}
		if err := f.sleep(ctx, f.backoff); err != nil {
			return "", err
		}
	}

	return "", praticagem.Errorf(praticagem.EUNAVAILABLE, "all %d attempts failed: %v", f.maxAttempts, lastErr)
}

// fetchOnce performs a single GET against the configured URL.
func (f *Fetcher) fetchOnce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, f.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// sleepContext is the default SleepFunc: a timer wait that respects
// cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
