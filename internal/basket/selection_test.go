package basket

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricescan/catalog-service/internal/catalog"
)

func TestSelectionSetAddDedupes(t *testing.T) {
	s := NewSelectionSet()

	assert.True(t, s.Add(catalog.Product{ID: "1", Barcode: "X"}))
	assert.False(t, s.Add(catalog.Product{ID: "2", Barcode: "X"})) // same barcode, same selection
	assert.True(t, s.Add(catalog.Product{ID: "3", Barcode: "Y"}))

	assert.Equal(t, 2, s.Len())
}

func TestSelectionSetRemove(t *testing.T) {
	s := NewSelectionSet()
	s.Add(catalog.Product{Barcode: "X"})
	s.Add(catalog.Product{Barcode: "Y"})

	assert.True(t, s.Remove("X"))
	assert.False(t, s.Remove("X"))
	assert.Equal(t, 1, s.Len())

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Y", items[0].Barcode)
}

func TestSelectionSetItemsReturnsCopy(t *testing.T) {
	s := NewSelectionSet()
	s.Add(catalog.Product{Barcode: "X", Name: "original"})

	items := s.Items()
	items[0].Name = "mutated"

	assert.Equal(t, "original", s.Items()[0].Name)
}

func TestSelectionSetClear(t *testing.T) {
	s := NewSelectionSet()
	s.Add(catalog.Product{Barcode: "X"})
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
}

func TestSelectionSetConcurrentReaders(t *testing.T) {
	s := NewSelectionSet()
	s.Add(catalog.Product{Barcode: "X"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Items()
				_ = s.Len()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		s.Add(catalog.Product{Barcode: "Y"})
		s.Remove("Y")
	}
	wg.Wait()
}
