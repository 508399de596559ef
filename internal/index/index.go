// Package index builds the offer index: a grouping of a flat product
// snapshot by catalog key.
package index

import (
	"github.com/pricescan/catalog-service/internal/catalog"
)

// GroupByCatalogKey groups a product snapshot by catalog key (barcode,
// or normalized name when no barcode is present). Input order is
// preserved within each group and no ranking is implied. The input is
// never mutated; an empty snapshot yields an empty map.
func GroupByCatalogKey(products []catalog.Product) map[string][]catalog.Product {
	groups := make(map[string][]catalog.Product, len(products))
	for _, p := range products {
		key := catalog.Key(p)
		groups[key] = append(groups[key], p)
	}
	return groups
}

// Flatten concatenates all groups back into a flat offer list. Group
// iteration order is unspecified but offers within a group keep their
// order, so re-grouping a flattened index reproduces the same index.
func Flatten(groups map[string][]catalog.Product) []catalog.Product {
	var out []catalog.Product
	for _, offers := range groups {
		out = append(out, offers...)
	}
	return out
}
