package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricescan/catalog-service/internal/catalog"
)

// Product CRUD is a thin pass-through to the catalog store. The
// computation layer never sees these writes directly; they surface in
// the next snapshot.

// GetProduct fetches one product by id
// GET /internal/products/:id
func GetProduct(c *gin.Context) {
	if catalogSource == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog store not configured"})
		return
	}

	p, found, err := catalogSource.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpsertProductRequest is the product payload for create/update
type UpsertProductRequest struct {
	ID            string          `json:"id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Price         float64         `json:"price"`
	Barcode       string          `json:"barcode"`
	StoreName     string          `json:"storeName" binding:"required"`
	StoreLocation *catalog.LatLng `json:"storeLocation,omitempty"`
	UpdatedAt     int64           `json:"updatedAt"`
	Rating        float64         `json:"rating"`
	ImageURL      string          `json:"imageUrl"`
}

// UpsertProduct creates or replaces a product record
// PUT /internal/products
func UpsertProduct(c *gin.Context) {
	if catalogSource == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog store not configured"})
		return
	}

	var req UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := catalog.Product{
		ID:            req.ID,
		Name:          req.Name,
		Price:         req.Price,
		Barcode:       catalog.NormalizeBarcode(req.Barcode),
		StoreName:     req.StoreName,
		StoreLocation: req.StoreLocation,
		UpdatedAt:     req.UpdatedAt,
		Rating:        req.Rating,
		ImageURL:      req.ImageURL,
	}

	if err := catalogSource.UpsertProduct(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProduct removes a product record
// DELETE /internal/products/:id
func DeleteProduct(c *gin.Context) {
	if catalogSource == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog store not configured"})
		return
	}

	if err := catalogSource.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
