package basket

import (
	"sync"

	"github.com/pricescan/catalog-service/internal/catalog"
)

// SelectionSet is the session-scoped basket: the catalog items a user
// has marked for price comparison. Identity is the catalog key, so two
// entries with the same barcode are the same selection. It is the only
// mutable state this service owns; a single writer mutates it while
// readers get copies.
type SelectionSet struct {
	mu    sync.RWMutex
	items []catalog.Product
}

// NewSelectionSet returns an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{}
}

// Add inserts a product into the selection. Returns false when an item
// with the same catalog key is already selected.
func (s *SelectionSet) Add(p catalog.Product) bool {
	key := catalog.Key(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if catalog.Key(existing) == key {
			return false
		}
	}

	next := make([]catalog.Product, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, p)
	return true
}

// Remove deletes the selection entry with the given catalog key.
// Returns false when no such entry exists.
func (s *SelectionSet) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if catalog.Key(existing) == key {
			next := make([]catalog.Product, 0, len(s.items)-1)
			next = append(next, s.items[:i]...)
			next = append(next, s.items[i+1:]...)
			s.items = next
			return true
		}
	}
	return false
}

// Items returns a copy of the current selection in insertion order.
func (s *SelectionSet) Items() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Clear empties the selection.
func (s *SelectionSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Len reports the number of selected items.
func (s *SelectionSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
