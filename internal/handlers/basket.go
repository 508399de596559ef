package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pricescan/catalog-service/internal/basket"
	"github.com/pricescan/catalog-service/internal/catalog"
)

// AddSelectionRequest identifies the product to add to the basket
type AddSelectionRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// SelectionResponse is the current basket content.
type SelectionResponse struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

// AddSelection adds a product from the current snapshot to the basket
// POST /internal/basket/items
func AddSelection(c *gin.Context) {
	var req AddSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product *catalog.Product
	for _, p := range snapshotHolder.Latest() {
		if p.ID == req.ProductID {
			product = &p
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not in current snapshot"})
		return
	}

	added := selectionSet.Add(*product)
	status := http.StatusCreated
	if !added {
		// same catalog key already selected; idempotent
		status = http.StatusOK
	}
	c.JSON(status, SelectionResponse{Items: selectionSet.Items(), Count: selectionSet.Len()})
}

// RemoveSelection removes one basket entry by catalog key
// DELETE /internal/basket/items/:key
func RemoveSelection(c *gin.Context) {
	key := c.Param("key")
	if !selectionSet.Remove(key) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no selection with that catalog key"})
		return
	}
	c.JSON(http.StatusOK, SelectionResponse{Items: selectionSet.Items(), Count: selectionSet.Len()})
}

// GetSelection returns the current basket
// GET /internal/basket
func GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, SelectionResponse{Items: selectionSet.Items(), Count: selectionSet.Len()})
}

// ClearSelection empties the basket
// DELETE /internal/basket
func ClearSelection(c *gin.Context) {
	selectionSet.Clear()
	c.JSON(http.StatusOK, SelectionResponse{Items: []catalog.Product{}, Count: 0})
}

// CheapestStoresResponse ranks stores able to cover the whole basket.
type CheapestStoresResponse struct {
	Stores []basket.StoreTotal `json:"stores"`
}

// CheapestStores computes the cheapest full-coverage stores for the basket
// GET /internal/basket/cheapest
func CheapestStores(c *gin.Context) {
	defer metrics.RecordQueryDuration("cheapest_stores", time.Now())

	selection := selectionSet.Items()
	metrics.RecordBasketSize(len(selection))

	results := basket.CheapestStores(selection, snapshotHolder.Latest())
	c.JSON(http.StatusOK, CheapestStoresResponse{Stores: results})
}
