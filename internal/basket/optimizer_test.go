package basket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricescan/catalog-service/internal/catalog"
)

func TestCheapestStoresExcludesIncompleteCoverage(t *testing.T) {
	selection := []catalog.Product{
		{Barcode: "X", Name: "Item X"},
		{Barcode: "Y", Name: "Item Y"},
	}
	offers := []catalog.Product{
		{StoreName: "A", Barcode: "X", Name: "Item X", Price: 10},
		{StoreName: "A", Barcode: "Y", Name: "Item Y", Price: 5},
		{StoreName: "B", Barcode: "X", Name: "Item X", Price: 8},
	}

	results := CheapestStores(selection, offers)
	// store B lacks Y and must not appear, not even at cost zero
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Store.Name)
	assert.Equal(t, 15.0, results[0].Total)
}

func TestCheapestStoresPicksCheapestOfferPerStore(t *testing.T) {
	selection := []catalog.Product{{Barcode: "X"}}
	offers := []catalog.Product{
		{StoreName: "A", Barcode: "X", Price: 4.00},
		{StoreName: "A", Barcode: "X", Price: 2.50}, // duplicate listing, cheaper
	}

	results := CheapestStores(selection, offers)
	require.Len(t, results, 1)
	assert.Equal(t, 2.50, results[0].Total)
}

func TestCheapestStoresOrderingAndTieBreak(t *testing.T) {
	selection := []catalog.Product{{Barcode: "X"}}
	offers := []catalog.Product{
		{StoreName: "Zeta", Barcode: "X", Price: 3},
		{StoreName: "Alpha", Barcode: "X", Price: 3},
		{StoreName: "Cheap", Barcode: "X", Price: 1},
	}

	results := CheapestStores(selection, offers)
	require.Len(t, results, 3)
	assert.Equal(t, "Cheap", results[0].Store.Name)
	// equal totals ordered by store name
	assert.Equal(t, "Alpha", results[1].Store.Name)
	assert.Equal(t, "Zeta", results[2].Store.Name)
}

func TestCheapestStoresDedupesSelectionByBarcode(t *testing.T) {
	selection := []catalog.Product{
		{Barcode: "X"},
		{Barcode: "X"}, // same selection, must not double-count
	}
	offers := []catalog.Product{
		{StoreName: "A", Barcode: "X", Price: 7},
	}

	results := CheapestStores(selection, offers)
	require.Len(t, results, 1)
	assert.Equal(t, 7.0, results[0].Total)
}

func TestCheapestStoresNameFallbackKey(t *testing.T) {
	// No barcodes: matching falls back to the normalized name key
	selection := []catalog.Product{{Name: "Bread"}}
	offers := []catalog.Product{
		{StoreName: "A", Name: " bread ", Price: 1.20},
	}

	results := CheapestStores(selection, offers)
	require.Len(t, results, 1)
	assert.Equal(t, 1.20, results[0].Total)
}

func TestCheapestStoresCarriesStoreLocation(t *testing.T) {
	loc := catalog.LatLng{Latitude: 45.8, Longitude: 16.0}
	selection := []catalog.Product{{Barcode: "X"}}
	offers := []catalog.Product{
		{StoreName: "A", Barcode: "X", Price: 1, StoreLocation: &loc},
	}

	results := CheapestStores(selection, offers)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Store.Location)
	assert.Equal(t, loc, *results[0].Store.Location)
}

func TestCheapestStoresEmptyInputs(t *testing.T) {
	offers := []catalog.Product{{StoreName: "A", Barcode: "X", Price: 1}}

	assert.Empty(t, CheapestStores(nil, offers))
	assert.Empty(t, CheapestStores([]catalog.Product{{Barcode: "X"}}, nil))
	assert.Empty(t, CheapestStores(nil, nil))
}
