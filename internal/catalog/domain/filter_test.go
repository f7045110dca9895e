package domain

import "testing"

func TestParseSort_Valid(t *testing.T) {
	valid := []string{
		"relevance", "price_asc", "price_desc", "year_desc",
		"mileage_asc", "rating", "name_asc", "proximity",
	}
	for _, s := range valid {
		got, err := ParseSort(s)
		if err != nil {
			t.Fatalf("ParseSort(%q) returned error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseSort(%q) = %q", s, got)
		}
	}
}

func TestParseSort_Invalid(t *testing.T) {
	for _, s := range []string{"", "price", "PRICE_ASC", "newest"} {
		if _, err := ParseSort(s); err == nil {
			t.Errorf("ParseSort(%q) should fail", s)
		}
	}
}

func TestDefaultSort(t *testing.T) {
	if got := DefaultSort(true); got != SortProximity {
		t.Errorf("DefaultSort(true) = %q, want %q", got, SortProximity)
	}
	if got := DefaultSort(false); got != SortRelevance {
		t.Errorf("DefaultSort(false) = %q, want %q", got, SortRelevance)
	}
}

func TestDefaultFilterSpecHasNoConstraints(t *testing.T) {
	if DefaultFilterSpec() != (FilterSpec{}) {
		t.Error("DefaultFilterSpec must be the zero spec")
	}
}
