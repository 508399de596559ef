package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricescan/catalog-service/internal/catalog"
)

func TestBasketFlow(t *testing.T) {
	router := setupTestRouter(t, []catalog.Product{
		{ID: "p1", Barcode: "X", Name: "Item X", StoreName: "A", Price: 10},
		{ID: "p2", Barcode: "Y", Name: "Item Y", StoreName: "A", Price: 5},
		{ID: "p3", Barcode: "X", Name: "Item X", StoreName: "B", Price: 8},
	})

	// add two items
	w := doRequest(t, router, http.MethodPost, "/internal/basket/items", `{"productId":"p1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, router, http.MethodPost, "/internal/basket/items", `{"productId":"p2"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// adding the same catalog key again is idempotent
	w = doRequest(t, router, http.MethodPost, "/internal/basket/items", `{"productId":"p3"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var sel SelectionResponse
	w = doRequest(t, router, http.MethodGet, "/internal/basket", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.Equal(t, 2, sel.Count)

	// only store A covers both items: 10 + 5
	w = doRequest(t, router, http.MethodGet, "/internal/basket/cheapest", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cheapest CheapestStoresResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cheapest))
	require.Len(t, cheapest.Stores, 1)
	assert.Equal(t, "A", cheapest.Stores[0].Store.Name)
	assert.Equal(t, 15.0, cheapest.Stores[0].Total)

	// remove one and clear the rest
	w = doRequest(t, router, http.MethodDelete, "/internal/basket/items/X", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/internal/basket", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/internal/basket", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.Equal(t, 0, sel.Count)
}

func TestAddSelectionUnknownProduct(t *testing.T) {
	router := setupTestRouter(t, nil)
	w := doRequest(t, router, http.MethodPost, "/internal/basket/items", `{"productId":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveSelectionUnknownKey(t *testing.T) {
	router := setupTestRouter(t, nil)
	w := doRequest(t, router, http.MethodDelete, "/internal/basket/items/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheapestStoresEmptyBasket(t *testing.T) {
	router := setupTestRouter(t, []catalog.Product{
		{ID: "p1", Barcode: "X", StoreName: "A", Price: 10},
	})

	w := doRequest(t, router, http.MethodGet, "/internal/basket/cheapest", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp CheapestStoresResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Stores)
}
