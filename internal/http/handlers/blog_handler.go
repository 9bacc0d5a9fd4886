package handlers

import (
	"github.com/gofiber/fiber/v2"

	"homeharbor/internal/domain"
	applog "homeharbor/internal/log"
	"homeharbor/internal/services"
	"homeharbor/internal/validate"
)

type BlogHandler struct {
	Blog *services.BlogService
}

// GET /api/blog
func (h *BlogHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Blog.ListPosts())
}

// GET /api/blog/:id
func (h *BlogHandler) Detail(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid blog post ID")
	}
	p, ok := h.Blog.GetPost(id)
	if !ok {
		return notFound(c, "Blog post not found")
	}
	return c.JSON(p)
}

// POST /api/blog
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var in domain.NewPost
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.NewPost(in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"entity": "post"})
		return badRequest(c, err.Error())
	}
	p := h.Blog.CreatePost(in)
	applog.Audit(c, "post.create", map[string]any{"id": p.ID, "title": p.Title})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/blog/:id
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid blog post ID")
	}
	var patch domain.PostPatch
	if err := c.BodyParser(&patch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	p, ok := h.Blog.UpdatePost(id, patch)
	if !ok {
		return notFound(c, "Blog post not found")
	}
	applog.Audit(c, "post.update", map[string]any{"id": id})
	return c.JSON(p)
}

// DELETE /api/blog/:id
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid blog post ID")
	}
	if !h.Blog.DeletePost(id) {
		return notFound(c, "Blog post not found")
	}
	applog.Audit(c, "post.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
