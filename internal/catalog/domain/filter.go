package domain

import "fmt"

// FilterSpec enumerates every predicate the catalog views can apply. Zero
// values ("" for categorical fields, 0 for range bounds) mean "no constraint".
// All active predicates are AND-combined.
type FilterSpec struct {
	Search string

	Type       ListingType
	Brand      string
	Model      string
	City       string
	SellerType SellerType
	Specialty  string

	VerifiedOnly bool
	ProOnly      bool

	PriceMin float64
	PriceMax float64

	YearMin int
	YearMax int

	MileageMin float64
	MileageMax float64

	CcMin float64
	CcMax float64
}

// DefaultFilterSpec returns a FilterSpec with every field at its "no constraint"
// sentinel. Resetting filters means replacing the current spec with this.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{}
}

type SortSpec string

const (
	SortRelevance  SortSpec = "relevance"
	SortPriceAsc   SortSpec = "price_asc"
	SortPriceDesc  SortSpec = "price_desc"
	SortYearDesc   SortSpec = "year_desc"
	SortMileageAsc SortSpec = "mileage_asc"
	SortRating     SortSpec = "rating"
	SortNameAsc    SortSpec = "name_asc"
	SortProximity  SortSpec = "proximity"
)

func ParseSort(s string) (SortSpec, error) {
	switch SortSpec(s) {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortYearDesc,
		SortMileageAsc, SortRating, SortNameAsc, SortProximity:
		return SortSpec(s), nil
	}
	return "", fmt.Errorf("unknown sort %q", s)
}

// DefaultSort is the order a view falls back to after a filter reset. When the
// user's location is already known the proximity order is kept, so that
// resetting filters does not discard the location context.
func DefaultSort(hasLocation bool) SortSpec {
	if hasLocation {
		return SortProximity
	}
	return SortRelevance
}
