// Package snapshot keeps the latest full product snapshot received from
// the external catalog store and serves it to query handlers lock-free.
package snapshot

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pricescan/catalog-service/internal/catalog"
)

// Holder stores the working set as an immutable snapshot swapped
// atomically on every emission from the catalog store. Readers always
// see a complete, consistent product list; there are no partial
// updates.
type Holder struct {
	current   atomic.Value // []catalog.Product
	swappedAt atomic.Value // time.Time
	logger    zerolog.Logger
	metrics   *MetricsRecorder
}

// NewHolder creates an empty holder.
func NewHolder() *Holder {
	h := &Holder{
		logger:  log.With().Str("component", "snapshot_holder").Logger(),
		metrics: NewMetricsRecorder(),
	}
	h.current.Store([]catalog.Product{})
	return h
}

// Swap replaces the working set with a new full snapshot. The slice is
// owned by the holder after the call and must not be mutated by the
// producer.
func (h *Holder) Swap(products []catalog.Product) {
	if products == nil {
		products = []catalog.Product{}
	}
	h.current.Store(products)
	h.swappedAt.Store(time.Now())

	h.metrics.RecordSwap(len(products))
	h.logger.Debug().Int("products", len(products)).Msg("Snapshot swapped")
}

// Latest returns the current snapshot. Callers must treat it as
// read-only.
func (h *Holder) Latest() []catalog.Product {
	return h.current.Load().([]catalog.Product)
}

// SwappedAt reports when the working set was last replaced, or zero
// time when no snapshot has arrived yet.
func (h *Holder) SwappedAt() time.Time {
	if t, ok := h.swappedAt.Load().(time.Time); ok {
		return t
	}
	return time.Time{}
}

// Ready reports whether at least one snapshot has been received.
func (h *Holder) Ready() bool {
	return !h.SwappedAt().IsZero()
}

// Run consumes a push-based snapshot stream until the context is
// cancelled or the channel closes. Each emission is a full replacement
// of the working set, never a diff.
func (h *Holder) Run(ctx context.Context, updates <-chan []catalog.Product) {
	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Msg("Snapshot consumer stopped")
			return
		case products, ok := <-updates:
			if !ok {
				h.logger.Info().Msg("Snapshot stream closed")
				return
			}
			h.Swap(products)
		}
	}
}
