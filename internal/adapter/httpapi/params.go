package httpapi

import (
	"net/http"
	"strconv"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
	"github.com/moto-tn/catalog-service/internal/geo"
)

// filterFromQuery builds a FilterSpec from the search form's query params.
// Missing or unparsable params stay at their "no constraint" sentinel.
func filterFromQuery(r *http.Request) domain.FilterSpec {
	q := r.URL.Query()
	return domain.FilterSpec{
		Search:       q.Get("q"),
		Type:         domain.ListingType(q.Get("type")),
		Brand:        q.Get("brand"),
		Model:        q.Get("model"),
		City:         q.Get("city"),
		SellerType:   domain.SellerType(q.Get("seller_type")),
		Specialty:    q.Get("specialty"),
		VerifiedOnly: q.Get("verified_only") == "true",
		ProOnly:      q.Get("pro_only") == "true",
		PriceMin:     floatParam(q.Get("price_min")),
		PriceMax:     floatParam(q.Get("price_max")),
		YearMin:      intParam(q.Get("year_min")),
		YearMax:      intParam(q.Get("year_max")),
		MileageMin:   floatParam(q.Get("km_min")),
		MileageMax:   floatParam(q.Get("km_max")),
		CcMin:        floatParam(q.Get("cc_min")),
		CcMax:        floatParam(q.Get("cc_max")),
	}
}

// locationFromQuery reads the client's resolved coordinates. The client owns
// the geolocation permission flow; absence simply disables proximity
// features.
func locationFromQuery(r *http.Request) *domain.Coordinates {
	q := r.URL.Query()
	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &domain.Coordinates{Lat: lat, Lng: lng}
}

// resolveLocation prefers the client's explicit coordinates and falls back to
// the configured locator. A nil result disables proximity features for the
// request.
func resolveLocation(r *http.Request, locator geo.Locator) *domain.Coordinates {
	if loc := locationFromQuery(r); loc != nil {
		return loc
	}
	if locator == nil {
		return nil
	}
	loc, status := locator.Locate(r.Context())
	if status != geo.StatusOK {
		return nil
	}
	return loc
}

// sortFromQuery parses the sort param, falling back to the location-aware
// default on absence or garbage.
func sortFromQuery(r *http.Request, hasLocation bool) domain.SortSpec {
	s, err := domain.ParseSort(r.URL.Query().Get("sort"))
	if err != nil {
		return domain.DefaultSort(hasLocation)
	}
	return s
}

func floatParam(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func intParam(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func int64Param(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
