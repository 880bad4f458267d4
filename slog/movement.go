package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/marcusvs/praticagem"
)

// Ensure LoggingMovementService implements praticagem.MovementService.
var _ praticagem.MovementService = (*LoggingMovementService)(nil)

// LoggingMovementService wraps a MovementService with logging.
type LoggingMovementService struct {
	next   praticagem.MovementService
	logger *slog.Logger
}

// NewLoggingMovementService creates a new LoggingMovementService.
func NewLoggingMovementService(next praticagem.MovementService, logger *slog.Logger) *LoggingMovementService {
	return &LoggingMovementService{next: next, logger: logger}
}

// Movements delegates to the wrapped service and logs the operation.
func (s *LoggingMovementService) Movements(ctx context.Context) (movements []praticagem.Movement, err error) {
	defer func(begin time.Time) {
		s.logger.Info("movements",
			"count", len(movements),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Movements(ctx)
}
