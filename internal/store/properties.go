package store

import (
	"strings"
	"time"

	"homeharbor/internal/domain"
)

// SearchQuery narrows the property collection. Every field is optional; the
// filter applies whatever it is given literally and knows nothing about UI
// sentinel values ("all", empty select) — callers strip those first. Present
// criteria are AND-combined.
type SearchQuery struct {
	Location string // case-insensitive substring match
	Type     string // exact match
	MinPrice *float64
	MaxPrice *float64
}

func (s *MemStore) ListProperties() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Property, 0, len(s.propertyOrder))
	for _, id := range s.propertyOrder {
		out = append(out, s.properties[id])
	}
	return out
}

func (s *MemStore) GetProperty(id int) (domain.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[id]
	return p, ok
}

// FeaturedProperties returns the listings promoted on the public highlight
// surfaces. New listings default to non-featured and are excluded.
func (s *MemStore) FeaturedProperties() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Property, 0, len(s.propertyOrder))
	for _, id := range s.propertyOrder {
		if p := s.properties[id]; p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemStore) SearchProperties(q SearchQuery) []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Property, 0, len(s.propertyOrder))
	for _, id := range s.propertyOrder {
		p := s.properties[id]
		if q.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(q.Location)) {
			continue
		}
		if q.Type != "" && p.Type != q.Type {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *MemStore) CreateProperty(in domain.NewProperty) domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.propertySeq
	s.propertySeq++
	p := domain.Property{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Status:      in.Status,
		Type:        in.Type,
		Location:    in.Location,
		Address:     in.Address,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Area:        in.Area,
		ImageURL:    in.ImageURL,
		Lat:         in.Lat,
		Lng:         in.Lng,
		CreatedAt:   time.Now().UTC(),
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	s.properties[id] = p
	s.propertyOrder = append(s.propertyOrder, id)
	return p
}

// UpdateProperty merges the supplied fields over the stored record. ID and
// CreatedAt survive every patch.
func (s *MemStore) UpdateProperty(id int, patch domain.PropertyPatch) (domain.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[id]
	if !ok {
		return domain.Property{}, false
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.Area != nil {
		p.Area = *patch.Area
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Lat != nil {
		p.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		p.Lng = *patch.Lng
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	s.properties[id] = p
	return p, true
}

func (s *MemStore) DeleteProperty(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[id]; !ok {
		return false
	}
	delete(s.properties, id)
	s.propertyOrder = removeID(s.propertyOrder, id)
	return true
}
