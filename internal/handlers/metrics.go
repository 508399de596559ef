package handlers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queryDuration tracks query latency per endpoint.
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_query_duration_seconds",
		Help:    "Time taken to answer catalog queries by endpoint",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"endpoint"})

	// basketSize tracks the distribution of basket sizes.
	basketSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_basket_items_count",
		Help:    "Number of items in cheapest-stores requests",
		Buckets: []float64{1, 2, 5, 10, 20, 50},
	})
)

// MetricsRecorder records query metrics.
type MetricsRecorder struct{}

// NewMetricsRecorder creates a metrics recorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

// RecordQueryDuration records the latency of one query.
func (m *MetricsRecorder) RecordQueryDuration(endpoint string, started time.Time) {
	queryDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

// RecordBasketSize records the basket size of one optimization request.
func (m *MetricsRecorder) RecordBasketSize(n int) {
	basketSize.Observe(float64(n))
}
