package services

import (
	"strings"

	"homeharbor/internal/domain"
	"homeharbor/internal/store"
)

// CatalogService fronts the property collection for both the public site and
// the admin console.
type CatalogService struct {
	Store *store.MemStore
}

func NewCatalogService(s *store.MemStore) *CatalogService {
	return &CatalogService{Store: s}
}

func (s *CatalogService) ListProperties() []domain.Property {
	return s.Store.ListProperties()
}

func (s *CatalogService) GetProperty(id int) (domain.Property, bool) {
	return s.Store.GetProperty(id)
}

func (s *CatalogService) Featured() []domain.Property {
	return s.Store.FeaturedProperties()
}

// Search strips the client's "no filter" sentinels (empty select, "all")
// before handing the criteria to the store, which applies whatever it gets
// literally.
func (s *CatalogService) Search(location, propertyType string, minPrice, maxPrice *float64) []domain.Property {
	q := store.SearchQuery{MinPrice: minPrice, MaxPrice: maxPrice}
	if v := strings.TrimSpace(location); v != "" && !strings.EqualFold(v, "all") {
		q.Location = v
	}
	if v := strings.TrimSpace(propertyType); v != "" && !strings.EqualFold(v, "all") {
		q.Type = v
	}
	return s.Store.SearchProperties(q)
}

func (s *CatalogService) CreateProperty(in domain.NewProperty) domain.Property {
	return s.Store.CreateProperty(in)
}

func (s *CatalogService) UpdateProperty(id int, patch domain.PropertyPatch) (domain.Property, bool) {
	return s.Store.UpdateProperty(id, patch)
}

func (s *CatalogService) DeleteProperty(id int) bool {
	return s.Store.DeleteProperty(id)
}
