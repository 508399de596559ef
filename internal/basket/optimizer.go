// Package basket holds the user's selection of catalog items and
// answers which stores can cover the whole selection the cheapest.
package basket

import (
	"sort"

	"github.com/pricescan/catalog-service/internal/catalog"
)

// ItemCost is the cheapest matching offer for one selected item at one
// store.
type ItemCost struct {
	CatalogKey string  `json:"catalogKey"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
}

// StoreTotal is the cost of buying every selected item at one store.
type StoreTotal struct {
	Store catalog.Store `json:"store"`
	Total float64       `json:"total"`
	Items []ItemCost    `json:"items"`
}

// CheapestStores computes, for each store that carries every selected
// item, the total cost of the selection there priced at the store's
// cheapest matching offer per item. Stores missing one or more selected
// items are excluded entirely; missing is never treated as cost zero.
// Results are ordered ascending by total, ties broken by store name for
// determinism. An empty selection or offer list yields an empty result.
func CheapestStores(selection []catalog.Product, allOffers []catalog.Product) []StoreTotal {
	wanted := dedupeSelection(selection)
	if len(wanted) == 0 || len(allOffers) == 0 {
		return []StoreTotal{}
	}

	type storeOffers struct {
		location *catalog.LatLng
		// cheapest offer per catalog key
		cheapest map[string]catalog.Product
	}
	stores := make(map[string]*storeOffers)

	for _, offer := range allOffers {
		so, ok := stores[offer.StoreName]
		if !ok {
			so = &storeOffers{cheapest: make(map[string]catalog.Product)}
			stores[offer.StoreName] = so
		}
		if so.location == nil && offer.StoreLocation != nil {
			so.location = offer.StoreLocation
		}
		key := catalog.Key(offer)
		if best, exists := so.cheapest[key]; !exists || offer.Price < best.Price {
			so.cheapest[key] = offer
		}
	}

	results := make([]StoreTotal, 0, len(stores))
	for name, so := range stores {
		total := 0.0
		items := make([]ItemCost, 0, len(wanted))
		covered := true
		for _, item := range wanted {
			key := catalog.Key(item)
			best, ok := so.cheapest[key]
			if !ok {
				covered = false
				break
			}
			total += best.Price
			items = append(items, ItemCost{CatalogKey: key, Name: best.Name, Price: best.Price})
		}
		if !covered {
			continue
		}
		results = append(results, StoreTotal{
			Store: catalog.Store{Name: name, Location: so.location},
			Total: total,
			Items: items,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Total != results[j].Total {
			return results[i].Total < results[j].Total
		}
		return results[i].Store.Name < results[j].Store.Name
	})

	return results
}

// dedupeSelection collapses the selection to one entry per catalog key,
// keeping first occurrence order.
func dedupeSelection(selection []catalog.Product) []catalog.Product {
	seen := make(map[string]struct{}, len(selection))
	out := make([]catalog.Product, 0, len(selection))
	for _, p := range selection {
		key := catalog.Key(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
