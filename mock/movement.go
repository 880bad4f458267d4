package mock

import (
	"context"

	"github.com/marcusvs/praticagem"
)

var _ praticagem.MovementService = (*MovementService)(nil)

// MovementService is a mock implementation of praticagem.MovementService.
type MovementService struct {
	MovementsFn func(ctx context.Context) ([]praticagem.Movement, error)
}

func (s *MovementService) Movements(ctx context.Context) ([]praticagem.Movement, error) {
	return s.MovementsFn(ctx)
}
