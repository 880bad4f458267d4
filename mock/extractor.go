package mock

import "github.com/marcusvs/praticagem"

var _ praticagem.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of praticagem.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]praticagem.Movement, error)
}

func (e *Extractor) Extract(html string) ([]praticagem.Movement, error) {
	return e.ExtractFn(html)
}
