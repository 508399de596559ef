package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricescan/catalog-service/internal/catalog"
)

func TestHolderSwapAndLatest(t *testing.T) {
	h := NewHolder()
	assert.Empty(t, h.Latest())
	assert.False(t, h.Ready())

	h.Swap([]catalog.Product{{ID: "1"}, {ID: "2"}})
	require.Len(t, h.Latest(), 2)
	assert.True(t, h.Ready())
	assert.False(t, h.SwappedAt().IsZero())
}

func TestHolderSwapIsFullReplacement(t *testing.T) {
	h := NewHolder()
	h.Swap([]catalog.Product{{ID: "1"}, {ID: "2"}})
	h.Swap([]catalog.Product{{ID: "3"}})

	latest := h.Latest()
	require.Len(t, latest, 1)
	assert.Equal(t, "3", latest[0].ID)
}

func TestHolderSwapNil(t *testing.T) {
	h := NewHolder()
	h.Swap(nil)
	assert.NotNil(t, h.Latest())
	assert.Empty(t, h.Latest())
}

func TestHolderRunConsumesStream(t *testing.T) {
	h := NewHolder()
	updates := make(chan []catalog.Product)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		h.Run(ctx, updates)
		close(done)
	}()

	updates <- []catalog.Product{{ID: "1"}}

	require.Eventually(t, func() bool {
		return len(h.Latest()) == 1
	}, time.Second, 10*time.Millisecond)

	close(updates)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after stream close")
	}
}

func TestHolderRunStopsOnCancel(t *testing.T) {
	h := NewHolder()
	updates := make(chan []catalog.Product)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		h.Run(ctx, updates)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
