package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pricescan/catalog-service/internal/basket"
	"github.com/pricescan/catalog-service/internal/catalog"
	"github.com/pricescan/catalog-service/internal/index"
	"github.com/pricescan/catalog-service/internal/ranking"
	"github.com/pricescan/catalog-service/internal/snapshot"
	"github.com/pricescan/catalog-service/internal/source"
	"github.com/pricescan/catalog-service/internal/suggest"
)

// Package-level instances wired during application startup.
var (
	snapshotHolder *snapshot.Holder
	catalogSource  *source.PostgresSource
	selectionSet   *basket.SelectionSet
	suggester      *suggest.Suggester
	metrics        *MetricsRecorder
)

// Init wires the handler dependencies. catalogSource may be nil when no
// backing store is configured; product CRUD then responds 503.
func Init(holder *snapshot.Holder, src *source.PostgresSource, selection *basket.SelectionSet, sug *suggest.Suggester) {
	snapshotHolder = holder
	catalogSource = src
	selectionSet = selection
	suggester = sug
	metrics = NewMetricsRecorder()
}

// OfferGroup is one catalog key with all offers sharing it.
type OfferGroup struct {
	CatalogKey string            `json:"catalogKey"`
	Offers     []catalog.Product `json:"offers"`
}

// ListOffersResponse is the full offer index.
type ListOffersResponse struct {
	Groups []OfferGroup `json:"groups"`
	Total  int          `json:"total"`
}

// ListOffers returns the current snapshot grouped by catalog key
// GET /internal/offers
func ListOffers(c *gin.Context) {
	defer metrics.RecordQueryDuration("list_offers", time.Now())

	products := snapshotHolder.Latest()
	groups := index.GroupByCatalogKey(products)

	resp := ListOffersResponse{
		Groups: make([]OfferGroup, 0, len(groups)),
		Total:  len(products),
	}
	for key, offers := range groups {
		resp.Groups = append(resp.Groups, OfferGroup{CatalogKey: key, Offers: offers})
	}

	c.JSON(http.StatusOK, resp)
}

// GetOffersRequest holds query parameters for a ranked offer lookup
type GetOffersRequest struct {
	Sort      string   `form:"sort"`
	Latitude  *float64 `form:"lat" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"lon" binding:"omitempty,min=-180,max=180"`
}

// GetOffersResponse is a ranked offer list for one catalog key.
type GetOffersResponse struct {
	CatalogKey string            `json:"catalogKey"`
	Criterion  string            `json:"criterion"`
	Offers     []catalog.Product `json:"offers"`
}

// GetOffers returns the offers for one catalog key, ranked
// GET /internal/offers/:key?sort=cheapest&lat=45.8&lon=15.9
func GetOffers(c *gin.Context) {
	defer metrics.RecordQueryDuration("get_offers", time.Now())

	key := c.Param("key")

	var req GetOffersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	criterion, ok := ranking.ParseCriterion(req.Sort)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort criterion: " + req.Sort})
		return
	}

	var userLocation *catalog.LatLng
	if req.Latitude != nil && req.Longitude != nil {
		userLocation = &catalog.LatLng{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	groups := index.GroupByCatalogKey(snapshotHolder.Latest())
	offers := groups[key]
	ranked := ranking.Rank(offers, criterion, userLocation)

	c.JSON(http.StatusOK, GetOffersResponse{
		CatalogKey: key,
		Criterion:  string(criterion),
		Offers:     ranked,
	})
}

// SuggestRequest holds query parameters for autocomplete
type SuggestRequest struct {
	Query string `form:"q"`
}

// SuggestResponse is a ranked list of name suggestions.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Suggest returns autocomplete suggestions for a partial product name
// GET /internal/suggest?q=mil
func Suggest(c *gin.Context) {
	defer metrics.RecordQueryDuration("suggest", time.Now())

	var req SuggestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products := snapshotHolder.Latest()
	universe := make([]string, len(products))
	for i, p := range products {
		universe[i] = p.Name
	}

	c.JSON(http.StatusOK, SuggestResponse{
		Suggestions: suggester.Suggest(req.Query, universe),
	})
}
