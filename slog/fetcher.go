// Package slog provides logging decorators for the domain services using
// the standard library's structured logger.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/marcusvs/praticagem"
)

// Ensure LoggingFetcher implements praticagem.Fetcher.
var _ praticagem.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Besides the usual duration
// and error, it logs a hash of the fetched HTML so operators can spot the
// source page changing shape between scrapes.
type LoggingFetcher struct {
	next   praticagem.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next praticagem.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"bytes", len(html),
			"contentHash", contentHash(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx)
}

// contentHash computes an xxhash of the fetched HTML.
func contentHash(html string) string {
	if html == "" {
		return ""
	}
	return fmt.Sprintf("%x", xxhash.Sum64String(html))
}
