package scan

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/cpfp-survey/internal/cpfp"
	"github.com/goodnatureofminers/cpfp-survey/pkg/batcher"
)

// BatchedStatsWriter buffers per-block stats and inserts them into the
// repository in batches. Insert failures are logged by the batcher and do
// not stop the scan.
type BatchedStatsWriter struct {
	repository   StatsRepository
	statsBatcher *batcher.Batcher[cpfp.BlockStats]
}

// NewBatchedStatsWriter builds a writer flushing into repository.
func NewBatchedStatsWriter(repository StatsRepository, logger *zap.Logger) *BatchedStatsWriter {
	w := &BatchedStatsWriter{repository: repository}
	w.statsBatcher = batcher.New(logger.Named("statsBatcher"), w.flush, statsFlushSize, statsFlushInterval, 0)
	return w
}

// Start begins background flushing.
func (w *BatchedStatsWriter) Start(ctx context.Context) {
	w.statsBatcher.Start(ctx)
}

// Stop flushes queued stats and stops background flushing.
func (w *BatchedStatsWriter) Stop() {
	w.statsBatcher.Stop()
}

// WriteStats queues one block's stats for insertion.
func (w *BatchedStatsWriter) WriteStats(ctx context.Context, stats cpfp.BlockStats) error {
	return w.statsBatcher.Add(ctx, stats)
}

func (w *BatchedStatsWriter) flush(ctx context.Context, stats []cpfp.BlockStats) error {
	return w.repository.InsertBlockStats(ctx, stats)
}

// NopStatsWriter discards stats. It backs scans that run without a
// ClickHouse sink configured.
type NopStatsWriter struct{}

func (NopStatsWriter) Start(context.Context) {}

func (NopStatsWriter) Stop() {}

func (NopStatsWriter) WriteStats(context.Context, cpfp.BlockStats) error { return nil }
