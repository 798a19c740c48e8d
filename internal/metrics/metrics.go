package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API Metrics
var (
	BlockSummaryRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "api_block_summary_requests_total",
		Help: "The total number of block summary requests served",
	})

	InvalidBlockRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "api_invalid_block_requests_total",
		Help: "The number of block summary requests rejected for invalid input",
	})
)

// RPC Metrics
var (
	RPCCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rpc_upstream_calls_total",
		Help: "The total number of JSON-RPC calls made to the upstream node",
	})

	RPCCallErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rpc_upstream_call_errors_total",
		Help: "The number of upstream JSON-RPC calls that failed",
	})

	RPCCallDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rpc_upstream_call_duration_seconds",
		Help:    "Duration of upstream JSON-RPC calls",
		Buckets: prometheus.DefBuckets,
	})
)
