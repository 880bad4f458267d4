// Package pipeline composes the fetcher and extractor into the movement
// service consumed by the API layer.
package pipeline

import (
	"context"

	"github.com/marcusvs/praticagem"
)

// Ensure Service implements praticagem.MovementService at compile time.
var _ praticagem.MovementService = (*Service)(nil)

// Service runs the scrape pipeline: fetch the page, extract the table.
// Both steps are stateless, so concurrent calls are independent; errors from
// either step propagate to the caller unmodified.
type Service struct {
	Fetcher   praticagem.Fetcher
	Extractor praticagem.Extractor
}

// NewService creates a Service around the given fetcher and extractor.
func NewService(fetcher praticagem.Fetcher, extractor praticagem.Extractor) *Service {
	return &Service{Fetcher: fetcher, Extractor: extractor}
}

// Movements fetches the movement page and extracts the scheduled movements.
func (s *Service) Movements(ctx context.Context) ([]praticagem.Movement, error) {
	html, err := s.Fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return s.Extractor.Extract(html)
}
