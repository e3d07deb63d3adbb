package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerProcessChunkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpfp_survey",
		Subsystem: "scanner",
		Name:      "process_chunk_total",
		Help:      "Count of processed height chunks.",
	}, []string{"network", "status"})

	scannerProcessChunkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cpfp_survey",
		Subsystem: "scanner",
		Name:      "process_chunk_duration_seconds",
		Help:      "Duration of processing a chunk of heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerProcessChunkSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cpfp_survey",
		Subsystem: "scanner",
		Name:      "process_chunk_size",
		Help:      "Number of heights processed per chunk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	scannerProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cpfp_survey",
		Subsystem: "scanner",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of fetching and analyzing a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerEmptyBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpfp_survey",
		Subsystem: "scanner",
		Name:      "empty_blocks_total",
		Help:      "Count of coinbase-only blocks skipped by the analyzer.",
	}, []string{"network"})
)

type Scanner struct {
	network string
}

func NewScanner(network string) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

func (m Scanner) ObserveProcessChunk(err error, heights int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerProcessChunkTotal.WithLabelValues(m.network, status).Inc()
	scannerProcessChunkDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
	scannerProcessChunkSize.WithLabelValues(m.network).Observe(float64(heights))
}

func (m Scanner) ObserveProcessHeight(err error, height uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerProcessHeightDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
}

func (m Scanner) ObserveEmptyBlock(height uint64) {
	scannerEmptyBlocksTotal.WithLabelValues(m.network).Inc()
}
