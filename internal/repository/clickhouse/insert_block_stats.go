package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cpfp-survey/internal/cpfp"
	"github.com/goodnatureofminers/cpfp-survey/pkg/safe"
)

// InsertBlockStats stores per-block stats rows in ClickHouse.
func (r *Repository) InsertBlockStats(ctx context.Context, stats []cpfp.BlockStats) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_block_stats", err, start)
	}()

	if len(stats) == 0 {
		return nil
	}

	const query = `
INSERT INTO cpfp_block_stats (
	network,
	height,
	tx_count,
	child_count,
	parent_count,
	candidate_count,
	candidate_parent_count,
	scanned_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block stats batch: %w", err)
	}

	scannedAt := time.Now().UTC()
	for _, blockStats := range stats {
		var row statsRow
		row, err = newStatsRow(blockStats)
		if err != nil {
			return fmt.Errorf("block %d stats row: %w", blockStats.Height, err)
		}

		if err = batch.Append(
			r.network,
			blockStats.Height,
			row.TxCount,
			row.ChildCount,
			row.ParentCount,
			row.CandidateCount,
			row.CandidateParentCount,
			scannedAt,
		); err != nil {
			return fmt.Errorf("append block stats: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block stats: %w", err)
	}
	return nil
}

// statsRow carries the counts in the column types of cpfp_block_stats.
type statsRow struct {
	TxCount              uint32
	ChildCount           uint32
	ParentCount          uint32
	CandidateCount       uint32
	CandidateParentCount uint32
}

func newStatsRow(stats cpfp.BlockStats) (statsRow, error) {
	var row statsRow
	var err error
	if row.TxCount, err = safe.Uint32(stats.TxCount); err != nil {
		return row, fmt.Errorf("tx_count: %w", err)
	}
	if row.ChildCount, err = safe.Uint32(stats.ChildCount); err != nil {
		return row, fmt.Errorf("child_count: %w", err)
	}
	if row.ParentCount, err = safe.Uint32(stats.ParentCount); err != nil {
		return row, fmt.Errorf("parent_count: %w", err)
	}
	if row.CandidateCount, err = safe.Uint32(stats.CandidateCount); err != nil {
		return row, fmt.Errorf("candidate_count: %w", err)
	}
	if row.CandidateParentCount, err = safe.Uint32(stats.CandidateParentCount); err != nil {
		return row, fmt.Errorf("candidate_parent_count: %w", err)
	}
	return row, nil
}
