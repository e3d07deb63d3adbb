// Package metrics exposes Prometheus collectors for the survey's moving
// parts.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpfp_survey",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cpfp_survey",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	rpcWarmupRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cpfp_survey",
		Subsystem: "rpc_client",
		Name:      "warmup_retries_total",
		Help:      "Count of retries while the node reported warming up.",
	}, []string{"operation", "network"})
)

// RPCClient tracks metrics for RPC calls to the node.
type RPCClient struct {
	network string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(network string) *RPCClient {
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveWarmupRetry records one backoff-and-retry round against a warming
// up node.
func (m RPCClient) ObserveWarmupRetry(operation string) {
	rpcWarmupRetriesTotal.WithLabelValues(operation, m.network).Inc()
}
