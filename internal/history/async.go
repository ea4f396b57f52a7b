package history

import (
	"context"
	"fmt"

	"github.com/osse101/PoE2Craft_Go/internal/logger"
	"github.com/osse101/PoE2Craft_Go/internal/metrics"
	"github.com/osse101/PoE2Craft_Go/internal/worker"
)

// AsyncRecorder writes entries to a Repository from a background worker pool
type AsyncRecorder struct {
	repo Repository
	pool *worker.Pool
}

// AsyncConfig sizes the background pool; zero values use the defaults
type AsyncConfig struct {
	Workers   int
	QueueSize int
}

// NewAsyncRecorder starts the worker pool. Call Close to flush it.
func NewAsyncRecorder(repo Repository, cfg AsyncConfig) *AsyncRecorder {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	pool := worker.NewPool(cfg.Workers, cfg.QueueSize, DefaultJobTimeout)
	pool.Start()
	return &AsyncRecorder{repo: repo, pool: pool}
}

type insertJob struct {
	repo  Repository
	entry *Entry
}

func (j *insertJob) Process(ctx context.Context) error {
	if err := j.repo.Insert(ctx, j.entry); err != nil {
		metrics.HistoryWriteFailures.Inc()
		return fmt.Errorf("%s %s: %w", ErrMsgInsertFailed, j.entry.ID, err)
	}
	return nil
}

// Record queues the entry. A full queue drops it and counts a write failure.
func (r *AsyncRecorder) Record(ctx context.Context, e *Entry) {
	if r.pool.TryEnqueue(&insertJob{repo: r.repo, entry: e}) {
		return
	}
	metrics.HistoryWriteFailures.Inc()
	logger.FromContext(ctx).Warn(LogMsgQueueFull, LogFieldEntryID, e.ID, LogFieldCurrency, e.Currency)
}

// Recent reads straight from the repository
func (r *AsyncRecorder) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return r.repo.Recent(ctx, ClampLimit(limit))
}

// Close waits for queued entries to be written
func (r *AsyncRecorder) Close() {
	r.pool.Stop()
	logger.FromContext(context.Background()).Info(LogMsgRecorderStop, LogFieldFailed, r.pool.Failed())
}
