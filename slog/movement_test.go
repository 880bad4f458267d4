package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/marcusvs/praticagem"
	"github.com/marcusvs/praticagem/mock"
	praticagemslog "github.com/marcusvs/praticagem/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMovementService_Movements(t *testing.T) {
	t.Parallel()

	t.Run("logs count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MovementService{
			MovementsFn: func(ctx context.Context) ([]praticagem.Movement, error) {
				return []praticagem.Movement{
					{Vessel: "MSC MARINA"},
					{Vessel: "CAP SAN LORENZO"},
				}, nil
			},
		}

		svc := praticagemslog.NewLoggingMovementService(inner, logger)
		movements, err := svc.Movements(context.Background())

		require.NoError(t, err)
		assert.Len(t, movements, 2)
		output := buf.String()
		assert.Contains(t, output, "movements")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MovementService{
			MovementsFn: func(ctx context.Context) ([]praticagem.Movement, error) {
				return nil, praticagem.Errorf(praticagem.ESTRUCTURE, "movement table not found")
			},
		}

		svc := praticagemslog.NewLoggingMovementService(inner, logger)
		_, err := svc.Movements(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "movement table not found")
	})
}
