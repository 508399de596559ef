package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// snapshotProducts tracks the size of the current working set.
	snapshotProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_snapshot_products",
		Help: "Number of products in the current snapshot",
	})

	// snapshotSwaps counts working set replacements.
	snapshotSwaps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_snapshot_swaps_total",
		Help: "Total number of snapshot replacements",
	})
)

// MetricsRecorder records snapshot lifecycle metrics.
type MetricsRecorder struct{}

// NewMetricsRecorder creates a metrics recorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

// RecordSwap records one working set replacement of the given size.
func (m *MetricsRecorder) RecordSwap(productCount int) {
	snapshotProducts.Set(float64(productCount))
	snapshotSwaps.Inc()
}
