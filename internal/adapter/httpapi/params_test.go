package httpapi

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
	"github.com/moto-tn/catalog-service/internal/geo"
)

func TestFilterFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/listings?q=tmax&type=scooter&brand=Yamaha&city=Tunis&seller_type=pro&price_min=8000&price_max=30000&year_min=2018&km_max=40000&pro_only=true", nil)

	spec := filterFromQuery(r)

	assert.Equal(t, "tmax", spec.Search)
	assert.Equal(t, domain.TypeScooter, spec.Type)
	assert.Equal(t, "Yamaha", spec.Brand)
	assert.Equal(t, "Tunis", spec.City)
	assert.Equal(t, domain.SellerPro, spec.SellerType)
	assert.Equal(t, 8000.0, spec.PriceMin)
	assert.Equal(t, 30000.0, spec.PriceMax)
	assert.Equal(t, 2018, spec.YearMin)
	assert.Equal(t, 40000.0, spec.MileageMax)
	assert.True(t, spec.ProOnly)
	assert.False(t, spec.VerifiedOnly)
}

func TestFilterFromQuery_EmptyIsUnconstrained(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings", nil)
	assert.Equal(t, domain.DefaultFilterSpec(), filterFromQuery(r))
}

func TestFilterFromQuery_GarbageNumbersIgnored(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings?price_min=abc&year_max=20x5", nil)
	spec := filterFromQuery(r)
	assert.Zero(t, spec.PriceMin)
	assert.Zero(t, spec.YearMax)
}

func TestLocationFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings?lat=36.8065&lng=10.1815", nil)
	loc := locationFromQuery(r)
	require.NotNil(t, loc)
	assert.Equal(t, 36.8065, loc.Lat)
	assert.Equal(t, 10.1815, loc.Lng)

	assert.Nil(t, locationFromQuery(httptest.NewRequest("GET", "/api/listings", nil)))
	assert.Nil(t, locationFromQuery(httptest.NewRequest("GET", "/api/listings?lat=36.8", nil)))
	assert.Nil(t, locationFromQuery(httptest.NewRequest("GET", "/api/listings?lat=x&lng=y", nil)))
}

func TestResolveLocation(t *testing.T) {
	fallback := geo.StaticLocator{Coords: &domain.Coordinates{Lat: 36.8, Lng: 10.18}}

	// Explicit client coordinates win over the fallback.
	r := httptest.NewRequest("GET", "/api/listings?lat=35.8&lng=10.6", nil)
	loc := resolveLocation(r, fallback)
	require.NotNil(t, loc)
	assert.Equal(t, 35.8, loc.Lat)

	// No client coordinates: the locator answers.
	r = httptest.NewRequest("GET", "/api/listings", nil)
	loc = resolveLocation(r, fallback)
	require.NotNil(t, loc)
	assert.Equal(t, 36.8, loc.Lat)

	// No locator at all: proximity is simply off.
	assert.Nil(t, resolveLocation(r, nil))
	assert.Nil(t, resolveLocation(r, geo.StaticLocator{}))
}

func TestSortFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/listings?sort=price_asc", nil)
	assert.Equal(t, domain.SortPriceAsc, sortFromQuery(r, false))

	// Absent or garbage: fall back to the location-aware default.
	r = httptest.NewRequest("GET", "/api/listings", nil)
	assert.Equal(t, domain.SortRelevance, sortFromQuery(r, false))
	assert.Equal(t, domain.SortProximity, sortFromQuery(r, true))

	r = httptest.NewRequest("GET", "/api/listings?sort=bogus", nil)
	assert.Equal(t, domain.SortProximity, sortFromQuery(r, true))
}
