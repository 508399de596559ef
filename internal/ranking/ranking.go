// Package ranking orders offer lists by a user-selected criterion.
package ranking

import (
	"sort"
	"strings"

	"github.com/pricescan/catalog-service/internal/catalog"
	"github.com/pricescan/catalog-service/internal/geo"
)

// Criterion selects the comparator used to order an offer list.
type Criterion string

const (
	CriterionAll      Criterion = "all"
	CriterionCheapest Criterion = "cheapest"
	CriterionNearest  Criterion = "nearest"
	CriterionNewest   Criterion = "newest"
	CriterionTopRated Criterion = "top_rated"
	// CriterionFeatured orders like CriterionTopRated: the data model
	// carries no featured flag, so a curated ordering is not available.
	CriterionFeatured Criterion = "featured"
)

// ParseCriterion maps a query-string value to a Criterion. Unknown or
// empty values map to CriterionAll.
func ParseCriterion(s string) (Criterion, bool) {
	switch Criterion(strings.ToLower(strings.TrimSpace(s))) {
	case CriterionCheapest:
		return CriterionCheapest, true
	case CriterionNearest:
		return CriterionNearest, true
	case CriterionNewest:
		return CriterionNewest, true
	case CriterionTopRated:
		return CriterionTopRated, true
	case CriterionFeatured:
		return CriterionFeatured, true
	case CriterionAll, "":
		return CriterionAll, true
	}
	return CriterionAll, false
}

// Rank returns a new slice with offers ordered by the given criterion.
// The input is never mutated and ranking never fails: records with
// missing or malformed fields sort last under their criterion, and a
// nearest-ranking without a user location falls back to input order.
func Rank(offers []catalog.Product, criterion Criterion, userLocation *catalog.LatLng) []catalog.Product {
	out := make([]catalog.Product, len(offers))
	copy(out, offers)

	switch criterion {
	case CriterionCheapest:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Price != out[j].Price {
				return out[i].Price < out[j].Price
			}
			return out[i].UpdatedAt > out[j].UpdatedAt
		})

	case CriterionNearest:
		if userLocation == nil {
			return out
		}
		rankNearest(out, *userLocation)

	case CriterionNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt > out[j].UpdatedAt
		})

	case CriterionTopRated, CriterionFeatured:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return out[i].Price < out[j].Price
		})
	}

	// CriterionAll and anything unrecognized keep input order
	return out
}

// rankNearest sorts in place by distance from the user. Offers without a
// store location sort after all located offers, keeping their relative
// input order.
func rankNearest(offers []catalog.Product, user catalog.LatLng) {
	type entry struct {
		offer    catalog.Product
		distance float64
		known    bool
	}
	entries := make([]entry, len(offers))
	for i, o := range offers {
		d, ok := geo.DistanceKm(user, o.StoreLocation)
		entries[i] = entry{offer: o, distance: d, known: ok}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.known != b.known {
			return a.known
		}
		if !a.known {
			return false
		}
		return a.distance < b.distance
	})

	for i, e := range entries {
		offers[i] = e.offer
	}
}
