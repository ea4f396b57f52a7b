package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PoE2Craft_Go/internal/config"
	"github.com/osse101/PoE2Craft_Go/internal/database"
	"github.com/osse101/PoE2Craft_Go/internal/database/postgres"
	"github.com/osse101/PoE2Craft_Go/internal/history"
)

// SetupHistory connects to the database, applies migrations and starts the
// asynchronous recorder. Without DATABASE_URL it returns a no-op recorder and a nil pool.
func SetupHistory(ctx context.Context, cfg *config.Config) (history.Recorder, *pgxpool.Pool, error) {
	if !cfg.HistoryEnabled() {
		slog.Info(LogMsgHistoryDisabled)
		return history.NopRecorder{}, nil, nil
	}

	pool, err := database.NewPool(ctx, cfg.PoolConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if _, err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	recorder := history.NewAsyncRecorder(postgres.NewHistoryRepository(pool), history.AsyncConfig{
		Workers:   cfg.HistoryWorkers,
		QueueSize: cfg.HistoryQueueSize,
	})
	slog.Info(LogMsgHistoryEnabled, "workers", cfg.HistoryWorkers, "queue_size", cfg.HistoryQueueSize)

	return recorder, pool, nil
}
