// Package scan walks an inclusive height range, analyzes each block for
// same-block fee-bumping relationships and folds the results into an
// explicit running aggregate.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/cpfp-survey/internal/cpfp"
	"github.com/goodnatureofminers/cpfp-survey/pkg/workerpool"
)

// Scanner fetches blocks concurrently in fixed-size height chunks and folds
// per-block stats in submission order, so the aggregate and the progress
// line always advance by height.
type Scanner struct {
	logger   *zap.Logger
	metrics  ScannerMetrics
	source   BlockSource
	writer   StatsWriter
	progress io.Writer

	workerCount int
	chunkSize   uint64
}

// NewScanner builds a Scanner. A non-positive workerCount falls back to the
// number of CPUs.
func NewScanner(source BlockSource, writer StatsWriter, metrics ScannerMetrics, workerCount int, progress io.Writer, logger *zap.Logger) (*Scanner, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if writer == nil {
		return nil, errors.New("stats writer is required")
	}
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Scanner{
		logger:      logger,
		metrics:     metrics,
		source:      source,
		writer:      writer,
		progress:    progress,
		workerCount: workerCount,
		chunkSize:   scanChunkSize,
	}, nil
}

// Run scans the inclusive range and returns the aggregate summary. Errors
// carry the failing height.
func (s *Scanner) Run(ctx context.Context, startHeight, stopHeight uint64) (cpfp.Summary, error) {
	if startHeight > stopHeight {
		return cpfp.Summary{}, fmt.Errorf("start height %d is above stop height %d", startHeight, stopHeight)
	}

	// The writer gets its own context so a canceled scan can still flush
	// stats already collected. Stop runs before the cancel.
	writerCtx, writerCancel := context.WithCancel(context.Background())
	defer writerCancel()
	s.writer.Start(writerCtx)
	defer s.writer.Stop()

	s.logger.Info("scanning blocks",
		zap.Uint64("from", startHeight),
		zap.Uint64("to", stopHeight),
		zap.Int("workers", s.workerCount))

	progress := newProgressPrinter(s.progress, int(stopHeight-startHeight+1))

	var agg cpfp.Aggregate

	for chunkStart := startHeight; ; {
		chunkStop := chunkStart + s.chunkSize - 1
		if chunkStop > stopHeight || chunkStop < chunkStart {
			chunkStop = stopHeight
		}

		if err := s.processChunk(ctx, chunkStart, chunkStop, progress, &agg); err != nil {
			return cpfp.Summary{}, err
		}

		if chunkStop == stopHeight {
			break
		}
		chunkStart = chunkStop + 1
	}

	progress.Finish()

	summary, err := agg.Summarize()
	if err != nil {
		return cpfp.Summary{}, fmt.Errorf("summarize blocks %d..%d: %w", startHeight, stopHeight, err)
	}
	return summary, nil
}

func (s *Scanner) processChunk(ctx context.Context, chunkStart, chunkStop uint64, progress *progressPrinter, agg *cpfp.Aggregate) (err error) {
	heights := make([]uint64, chunkStop-chunkStart+1)
	for i := range heights {
		heights[i] = chunkStart + uint64(i)
	}

	started := time.Now()
	defer func() { s.metrics.ObserveProcessChunk(err, len(heights), started) }()

	s.logger.Debug("processing chunk",
		zap.Uint64("from", chunkStart),
		zap.Uint64("to", chunkStop),
		zap.Int("heights", len(heights)))

	var results []*cpfp.BlockStats
	results, err = workerpool.Collect(ctx, s.workerCount, heights, s.processHeight)
	if err != nil {
		return err
	}

	for i, stats := range results {
		if stats != nil {
			agg.Add(*stats)
			if writeErr := s.writer.WriteStats(ctx, *stats); writeErr != nil {
				return fmt.Errorf("write stats for block %d: %w", heights[i], writeErr)
			}
		}
		progress.Observe(heights[i])
	}
	return nil
}

// processHeight returns nil stats for coinbase-only blocks, which stay out
// of the aggregate.
func (s *Scanner) processHeight(ctx context.Context, height uint64) (stats *cpfp.BlockStats, err error) {
	started := time.Now()
	defer func() { s.metrics.ObserveProcessHeight(err, height, started) }()

	txs, err := s.source.FetchBlockTxs(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("fetch block height %d: %w", height, err)
	}

	blockStats, ok := cpfp.AnalyzeBlock(height, txs)
	if !ok {
		s.logger.Debug("skipping coinbase-only block", zap.Uint64("height", height))
		s.metrics.ObserveEmptyBlock(height)
		return nil, nil
	}
	return &blockStats, nil
}
