package scan

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cpfp-survey/internal/cpfp"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource fetches the full transaction list of one block.
	BlockSource interface {
		FetchBlockTxs(ctx context.Context, height uint64) ([]cpfp.Transaction, error)
	}

	// StatsWriter persists per-block stats as the scan progresses.
	StatsWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteStats(ctx context.Context, stats cpfp.BlockStats) error
	}

	// StatsRepository inserts analyzed block stats.
	StatsRepository interface {
		InsertBlockStats(ctx context.Context, stats []cpfp.BlockStats) error
	}

	// ScannerMetrics records scan throughput and skipped blocks.
	ScannerMetrics interface {
		ObserveProcessChunk(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64, started time.Time)
		ObserveEmptyBlock(height uint64)
	}
)
