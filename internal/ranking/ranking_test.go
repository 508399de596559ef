package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricescan/catalog-service/internal/catalog"
)

func ids(offers []catalog.Product) []string {
	out := make([]string, len(offers))
	for i, o := range offers {
		out[i] = o.ID
	}
	return out
}

func TestRankCheapest(t *testing.T) {
	offers := []catalog.Product{
		{ID: "a", Price: 2.50, UpdatedAt: 100},
		{ID: "b", Price: 1.20, UpdatedAt: 100},
		{ID: "c", Price: 2.50, UpdatedAt: 300}, // ties with a, newer wins
		{ID: "d", Price: 0.99, UpdatedAt: 100},
	}

	ranked := Rank(offers, CriterionCheapest, nil)
	assert.Equal(t, []string{"d", "b", "c", "a"}, ids(ranked))

	// prices never decrease along the ranking
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Price, ranked[i].Price)
	}
}

func TestRankCheapestNegativePriceSortsFirst(t *testing.T) {
	offers := []catalog.Product{
		{ID: "a", Price: 1.00},
		{ID: "b", Price: -0.50}, // upstream garbage, still a valid low value
	}
	ranked := Rank(offers, CriterionCheapest, nil)
	assert.Equal(t, []string{"b", "a"}, ids(ranked))
}

func TestRankNearest(t *testing.T) {
	user := catalog.LatLng{Latitude: 45.8150, Longitude: 15.9819}
	near := catalog.LatLng{Latitude: 45.8000, Longitude: 15.9700}
	far := catalog.LatLng{Latitude: 43.5081, Longitude: 16.4402}

	offers := []catalog.Product{
		{ID: "far", StoreLocation: &far},
		{ID: "nowhere1"},
		{ID: "near", StoreLocation: &near},
		{ID: "nowhere2"},
	}

	ranked := Rank(offers, CriterionNearest, &user)
	// located offers by distance, then unlocated in input order
	assert.Equal(t, []string{"near", "far", "nowhere1", "nowhere2"}, ids(ranked))
}

func TestRankNearestWithoutUserLocation(t *testing.T) {
	offers := []catalog.Product{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	ranked := Rank(offers, CriterionNearest, nil)
	assert.Equal(t, []string{"a", "b", "c"}, ids(ranked))
}

func TestRankNewest(t *testing.T) {
	offers := []catalog.Product{
		{ID: "old", UpdatedAt: 100},
		{ID: "new", UpdatedAt: 300},
		{ID: "mid", UpdatedAt: 200},
	}
	ranked := Rank(offers, CriterionNewest, nil)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(ranked))
}

func TestRankTopRated(t *testing.T) {
	offers := []catalog.Product{
		{ID: "a", Rating: 4.5, Price: 2.00},
		{ID: "b", Rating: 4.5, Price: 1.50}, // ties on rating, cheaper wins
		{ID: "c", Rating: 5.0, Price: 9.99},
	}
	ranked := Rank(offers, CriterionTopRated, nil)
	assert.Equal(t, []string{"c", "b", "a"}, ids(ranked))
}

func TestRankFeaturedDegradesToTopRated(t *testing.T) {
	offers := []catalog.Product{
		{ID: "a", Rating: 3.0},
		{ID: "b", Rating: 4.0},
	}
	assert.Equal(t, Rank(offers, CriterionTopRated, nil), Rank(offers, CriterionFeatured, nil))
}

func TestRankAllKeepsInputOrder(t *testing.T) {
	offers := []catalog.Product{{ID: "z"}, {ID: "a"}, {ID: "m"}}
	ranked := Rank(offers, CriterionAll, nil)
	assert.Equal(t, []string{"z", "a", "m"}, ids(ranked))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	offers := []catalog.Product{
		{ID: "a", Price: 2.00},
		{ID: "b", Price: 1.00},
	}
	Rank(offers, CriterionCheapest, nil)
	assert.Equal(t, "a", offers[0].ID)
}

func TestRankEmpty(t *testing.T) {
	for _, c := range []Criterion{CriterionAll, CriterionCheapest, CriterionNearest, CriterionNewest, CriterionTopRated, CriterionFeatured} {
		assert.Empty(t, Rank(nil, c, nil))
	}
}

func TestParseCriterion(t *testing.T) {
	c, ok := ParseCriterion("CHEAPEST")
	require.True(t, ok)
	assert.Equal(t, CriterionCheapest, c)

	c, ok = ParseCriterion("")
	require.True(t, ok)
	assert.Equal(t, CriterionAll, c)

	c, ok = ParseCriterion("bogus")
	assert.False(t, ok)
	assert.Equal(t, CriterionAll, c)
}
