// Package catalog defines the shared data model for the catalog query
// engine: offers, stores and the catalog key that groups offers for the
// same logical product.
package catalog

import "strings"

// Product is a single offer: one store's price for one catalog item at
// one point in time. Records are owned by the external catalog store;
// this service only reads snapshots of them.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Barcode       string  `json:"barcode,omitempty"`
	StoreName     string  `json:"storeName"`
	StoreLocation *LatLng `json:"storeLocation,omitempty"`
	UpdatedAt     int64   `json:"updatedAt"` // epoch milliseconds
	Rating        float64 `json:"rating"`
	ImageURL      string  `json:"imageUrl,omitempty"`
}

// Store identifies a retail location offers are attached to.
type Store struct {
	Name     string  `json:"name"`
	Location *LatLng `json:"location,omitempty"`
}

// LatLng is a geographic coordinate in decimal degrees.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns the catalog key for a product: the barcode when one is
// present, otherwise the lowercased, whitespace-trimmed name. Every
// product belongs to exactly one offer group under this key.
func Key(p Product) string {
	if p.Barcode != "" {
		return p.Barcode
	}
	return NormalizeName(p.Name)
}

// NormalizeName produces the name-based fallback catalog key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
