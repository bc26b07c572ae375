package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartbiz_http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartbiz_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SalesCommitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartbiz_sales_committed_total",
			Help: "Sales successfully committed",
		},
	)

	StockMovements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartbiz_stock_movements_total",
			Help: "Stock ledger entries written by movement type",
		},
		[]string{"type"},
	)

	BatchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartbiz_batch_failures_total",
			Help: "Atomic write batches that rolled back",
		},
	)
)
