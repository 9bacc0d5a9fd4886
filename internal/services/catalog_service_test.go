package services_test

import (
	"testing"

	"homeharbor/internal/services"
	"homeharbor/internal/store"
)

func f64(v float64) *float64 { return &v }

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	s := store.New()
	store.Seed(s)
	return services.NewCatalogService(s)
}

func TestSearchStripsSentinels(t *testing.T) {
	svc := newCatalog(t)

	// the UI sends "" or "all" for unset selects; neither constrains
	for _, tc := range []struct{ location, typ string }{
		{"", ""},
		{"all", "all"},
		{"All", " all "},
	} {
		got := svc.Search(tc.location, tc.typ, nil, nil)
		if len(got) != 3 {
			t.Fatalf("location=%q type=%q: want 3 results, got %d", tc.location, tc.typ, len(got))
		}
	}
}

func TestSearchPassesRealCriteriaThrough(t *testing.T) {
	svc := newCatalog(t)

	got := svc.Search("beach", "all", nil, nil)
	if len(got) != 1 || got[0].Location != "Beachside" {
		t.Fatalf("want the Beachside villa, got %d results", len(got))
	}
	got = svc.Search("", "House", f64(400000), f64(450000))
	if len(got) != 1 || got[0].Price != 420000 {
		t.Fatalf("want the 420000 house, got %d results", len(got))
	}
}
