// Package engine implements the catalog query engine: the single place where
// "what results does the user see, in what order" is decided. Every view
// (search, garage directory, favorites-derived lists) goes through Query so
// filter and sort semantics stay identical across pages.
package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/moto-tn/catalog-service/internal/catalog/domain"
	"github.com/moto-tn/catalog-service/internal/geo"
)

// Result is a catalog item annotated with the distance from the caller's
// location. DistanceKm is nil when no location was supplied or the item has
// no coordinates.
type Result struct {
	Item       domain.Item `json:"item"`
	DistanceKm *float64    `json:"distance_km,omitempty"`
}

type Engine struct {
	collation language.Tag
}

// New returns an engine collating names for the Tunisian market (French).
func New() *Engine {
	return &Engine{collation: language.French}
}

// Query filters, annotates and sorts items. The input slice is never
// mutated; a fresh result slice is returned. All active predicates are
// AND-combined. Calling with a Proximity sort and no location degrades to
// the relevance order.
func (e *Engine) Query(items []domain.Item, spec domain.FilterSpec, sortBy domain.SortSpec, loc *domain.Coordinates) []Result {
	results := make([]Result, 0, len(items))
	for _, it := range items {
		if !matches(it, spec) {
			continue
		}
		r := Result{Item: it}
		if loc != nil {
			if c := it.ItemCoordinates(); c != nil {
				d := geo.DistanceKm(loc.Lat, loc.Lng, c.Lat, c.Lng)
				r.DistanceKm = &d
			}
		}
		results = append(results, r)
	}
	e.sortResults(results, sortBy, loc != nil)
	return results
}

func matches(it domain.Item, spec domain.FilterSpec) bool {
	if q := strings.TrimSpace(spec.Search); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(it.ItemTitle()), q) &&
			!strings.Contains(strings.ToLower(it.ItemLocation()), q) {
			return false
		}
	}
	switch v := it.(type) {
	case domain.Listing:
		return matchesListing(v, spec)
	case domain.Garage:
		return matchesGarage(v, spec)
	}
	return false
}

func matchesListing(l domain.Listing, spec domain.FilterSpec) bool {
	// Garage-only predicates can never hold for a listing.
	if spec.VerifiedOnly || spec.Specialty != "" {
		return false
	}
	if spec.Type != "" && l.Type != spec.Type {
		return false
	}
	if spec.Brand != "" && !strings.EqualFold(l.Brand, spec.Brand) {
		return false
	}
	if spec.Model != "" && !strings.EqualFold(l.Model, spec.Model) {
		return false
	}
	if spec.City != "" && !strings.EqualFold(l.Location, spec.City) {
		return false
	}
	if spec.SellerType != "" && l.SellerType != spec.SellerType {
		return false
	}
	if spec.ProOnly && l.SellerType != domain.SellerPro {
		return false
	}
	if !inRange(l.Price, spec.PriceMin, spec.PriceMax) {
		return false
	}
	// Accessories carry no year, mileage or displacement; those three range
	// filters do not apply to them at all.
	if l.Type != domain.TypeAccessories {
		if !inRange(l.Year, float64(spec.YearMin), float64(spec.YearMax)) {
			return false
		}
		if !inRange(l.MileageKm, spec.MileageMin, spec.MileageMax) {
			return false
		}
		if !inRange(l.DisplacementCc, spec.CcMin, spec.CcMax) {
			return false
		}
	}
	return true
}

func matchesGarage(g domain.Garage, spec domain.FilterSpec) bool {
	// Listing-only predicates can never hold for a garage.
	if spec.Type != "" || spec.Brand != "" || spec.Model != "" ||
		spec.SellerType != "" || spec.ProOnly {
		return false
	}
	if rangeActive(spec.PriceMin, spec.PriceMax) ||
		rangeActive(float64(spec.YearMin), float64(spec.YearMax)) ||
		rangeActive(spec.MileageMin, spec.MileageMax) ||
		rangeActive(spec.CcMin, spec.CcMax) {
		return false
	}
	if spec.City != "" && !strings.EqualFold(g.City, spec.City) {
		return false
	}
	if spec.VerifiedOnly && !g.IsVerified {
		return false
	}
	if spec.Specialty != "" {
		found := false
		for _, s := range g.Specialties {
			if strings.EqualFold(s, spec.Specialty) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func rangeActive(min, max float64) bool {
	return min > 0 || max > 0
}

// inRange checks min <= value <= max over a formatted numeric string. An
// inactive range (both bounds zero) always passes; an active range excludes
// items whose value cannot be parsed.
func inRange(raw string, min, max float64) bool {
	if !rangeActive(min, max) {
		return true
	}
	v, ok := parseAmount(raw)
	if !ok {
		return false
	}
	if min > 0 && v < min {
		return false
	}
	if max > 0 && v > max {
		return false
	}
	return true
}

// sortResults applies the requested order with a stable sort, so items tied
// on the sort key keep their pre-sort relative order.
func (e *Engine) sortResults(rs []Result, sortBy domain.SortSpec, hasLocation bool) {
	switch sortBy {
	case domain.SortProximity:
		if !hasLocation {
			sortByIDDesc(rs)
			return
		}
		sort.SliceStable(rs, func(i, j int) bool {
			di, oki := distanceOf(rs[i])
			dj, okj := distanceOf(rs[j])
			if oki != okj {
				return oki
			}
			return di < dj
		})
	case domain.SortPriceAsc:
		sortNumeric(rs, priceOf, true)
	case domain.SortPriceDesc:
		sortNumeric(rs, priceOf, false)
	case domain.SortYearDesc:
		sortNumeric(rs, yearOf, false)
	case domain.SortMileageAsc:
		sortNumeric(rs, mileageOf, true)
	case domain.SortRating:
		sortNumeric(rs, ratingOf, false)
	case domain.SortNameAsc:
		c := collate.New(e.collation)
		sort.SliceStable(rs, func(i, j int) bool {
			return c.CompareString(rs[i].Item.ItemTitle(), rs[j].Item.ItemTitle()) < 0
		})
	default:
		// Relevance: newest first, approximated by descending id.
		sortByIDDesc(rs)
	}
}

func sortByIDDesc(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Item.ItemID() > rs[j].Item.ItemID()
	})
}

// sortNumeric orders by a numeric key; items without a usable key sort last
// regardless of direction.
func sortNumeric(rs []Result, key func(Result) (float64, bool), asc bool) {
	sort.SliceStable(rs, func(i, j int) bool {
		vi, oki := key(rs[i])
		vj, okj := key(rs[j])
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		if asc {
			return vi < vj
		}
		return vi > vj
	})
}

func distanceOf(r Result) (float64, bool) {
	if r.DistanceKm == nil {
		return 0, false
	}
	return *r.DistanceKm, true
}

func priceOf(r Result) (float64, bool) {
	l, ok := r.Item.(domain.Listing)
	if !ok {
		return 0, false
	}
	return parseAmount(l.Price)
}

func yearOf(r Result) (float64, bool) {
	l, ok := r.Item.(domain.Listing)
	if !ok {
		return 0, false
	}
	return parseAmount(l.Year)
}

func mileageOf(r Result) (float64, bool) {
	l, ok := r.Item.(domain.Listing)
	if !ok {
		return 0, false
	}
	return parseAmount(l.MileageKm)
}

func ratingOf(r Result) (float64, bool) {
	g, ok := r.Item.(domain.Garage)
	if !ok {
		return 0, false
	}
	return g.Rating, true
}
