package store_test

import (
	"testing"

	"homeharbor/internal/domain"
	"homeharbor/internal/store"
)

func f64(v float64) *float64 { return &v }

func seededStore() *store.MemStore {
	s := store.New()
	store.Seed(s)
	return s
}

func titles(ps []domain.Property) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestSearchNoCriteriaReturnsEverything(t *testing.T) {
	s := seededStore()
	got := s.SearchProperties(store.SearchQuery{})
	if len(got) != 3 {
		t.Fatalf("want full collection (3), got %v", titles(got))
	}
}

func TestSearchTypeIsExactAndCaseSensitive(t *testing.T) {
	s := seededStore()
	got := s.SearchProperties(store.SearchQuery{Type: "Villa"})
	if len(got) != 1 || got[0].Type != "Villa" {
		t.Fatalf("want the one Villa, got %v", titles(got))
	}
	if got := s.SearchProperties(store.SearchQuery{Type: "villa"}); len(got) != 0 {
		t.Fatalf("type match must be case-sensitive, got %v", titles(got))
	}
}

func TestSearchLocationSubstringCaseInsensitive(t *testing.T) {
	s := seededStore()
	got := s.SearchProperties(store.SearchQuery{Location: "beach"})
	if len(got) != 1 || got[0].Location != "Beachside" {
		t.Fatalf(`"beach" should match Beachside, got %v`, titles(got))
	}
	got = s.SearchProperties(store.SearchQuery{Location: "DOWNTOWN"})
	if len(got) != 1 || got[0].Type != "Apartment" {
		t.Fatalf(`"DOWNTOWN" should match the apartment, got %v`, titles(got))
	}
}

func TestSearchPriceBoundsAreInclusive(t *testing.T) {
	s := seededStore()
	got := s.SearchProperties(store.SearchQuery{MinPrice: f64(100000), MaxPrice: f64(500000)})
	if len(got) != 1 || got[0].Price != 420000 {
		t.Fatalf("want only the 420000 house, got %v", titles(got))
	}
	// exact bound hits
	got = s.SearchProperties(store.SearchQuery{MinPrice: f64(420000), MaxPrice: f64(420000)})
	if len(got) != 1 || got[0].Price != 420000 {
		t.Fatalf("inclusive bounds must keep the boundary value, got %v", titles(got))
	}
}

func TestSearchCombinesCriteriaWithAND(t *testing.T) {
	s := seededStore()
	got := s.SearchProperties(store.SearchQuery{Type: "House", MinPrice: f64(400000), MaxPrice: f64(450000)})
	if len(got) != 1 || got[0].Type != "House" || got[0].Price != 420000 {
		t.Fatalf("want exactly the 420000 House, got %v", titles(got))
	}
	got = s.SearchProperties(store.SearchQuery{Type: "Villa", MaxPrice: f64(100)})
	if len(got) != 0 {
		t.Fatalf("intersection should be empty, got %v", titles(got))
	}
}

func TestFeaturedExcludesDefaultListings(t *testing.T) {
	s := seededStore()
	if got := len(s.FeaturedProperties()); got != 3 {
		t.Fatalf("seed promotes all 3 listings, got %d", got)
	}
	s.CreateProperty(newListing("Plain listing", "Nowhere", "House", 100000))
	got := s.FeaturedProperties()
	if len(got) != 3 {
		t.Fatalf("new listings default to non-featured, got %v", titles(got))
	}
	for _, p := range got {
		if !p.Featured {
			t.Fatalf("non-featured listing leaked into featured set: %s", p.Title)
		}
	}
}

func TestSearchKeepsListOrder(t *testing.T) {
	s := seededStore()
	got := s.SearchProperties(store.SearchQuery{MinPrice: f64(0)})
	want := []string{"Luxury Villa with Ocean View", "Modern Apartment in Downtown", "Spacious Family Home with Garden"}
	if len(got) != len(want) {
		t.Fatalf("want %d results, got %v", len(want), titles(got))
	}
	for i, p := range got {
		if p.Title != want[i] {
			t.Fatalf("order not stable at %d: got %v", i, titles(got))
		}
	}
}
