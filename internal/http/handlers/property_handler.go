package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"homeharbor/internal/domain"
	applog "homeharbor/internal/log"
	"homeharbor/internal/services"
	"homeharbor/internal/validate"
)

type PropertyHandler struct {
	Catalog *services.CatalogService
}

// GET /api/properties
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.ListProperties())
}

// GET /api/properties/featured
func (h *PropertyHandler) Featured(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Featured())
}

// GET /api/properties/search?location=&type=&minPrice=&maxPrice=
func (h *PropertyHandler) Search(c *fiber.Ctx) error {
	minPrice, ok := priceBound(c, "minPrice")
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "minPrice"})
		return badRequest(c, "Invalid minPrice")
	}
	maxPrice, ok := priceBound(c, "maxPrice")
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "maxPrice"})
		return badRequest(c, "Invalid maxPrice")
	}
	results := h.Catalog.Search(c.Query("location"), c.Query("type"), minPrice, maxPrice)
	return c.JSON(results)
}

// priceBound parses an optional numeric query param; absent means no bound.
func priceBound(c *fiber.Ctx, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// GET /api/properties/:id
func (h *PropertyHandler) Detail(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid property ID")
	}
	p, ok := h.Catalog.GetProperty(id)
	if !ok {
		return notFound(c, "Property not found")
	}
	return c.JSON(p)
}

// POST /api/properties
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in domain.NewProperty
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.NewProperty(in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"entity": "property"})
		return badRequest(c, err.Error())
	}
	p := h.Catalog.CreateProperty(in)
	applog.Audit(c, "property.create", map[string]any{"id": p.ID, "title": p.Title})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/properties/:id
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid property ID")
	}
	var patch domain.PropertyPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.PropertyPatch(patch); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"entity": "property", "id": id})
		return badRequest(c, err.Error())
	}
	p, ok := h.Catalog.UpdateProperty(id, patch)
	if !ok {
		return notFound(c, "Property not found")
	}
	applog.Audit(c, "property.update", map[string]any{"id": id})
	return c.JSON(p)
}

// DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid property ID")
	}
	if !h.Catalog.DeleteProperty(id) {
		return notFound(c, "Property not found")
	}
	applog.Audit(c, "property.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
