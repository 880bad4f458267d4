package mock

import (
	"context"

	"github.com/marcusvs/praticagem"
)

var _ praticagem.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of praticagem.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	return f.FetchFn(ctx)
}
