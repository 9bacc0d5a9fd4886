package handlers

import (
	"github.com/gofiber/fiber/v2"

	"homeharbor/internal/services"
	"homeharbor/internal/store"
)

type Deps struct {
	Properties *PropertyHandler
	Blog       *BlogHandler
	Messages   *MessageHandler
}

func NewDeps(st *store.MemStore) *Deps {
	return &Deps{
		Properties: &PropertyHandler{Catalog: services.NewCatalogService(st)},
		Blog:       &BlogHandler{Blog: services.NewBlogService(st)},
		Messages:   &MessageHandler{Inbox: services.NewInboxService(st)},
	}
}

// Register mounts the REST routes on the given router (normally the /api
// group). submitGuards run before the public contact-form POST only; the
// caller uses them to rate-limit submissions. Featured and search are
// registered ahead of :id so the literal segments are not captured as ids.
func (d *Deps) Register(api fiber.Router, submitGuards ...fiber.Handler) {
	api.Get("/properties", d.Properties.List)
	api.Get("/properties/featured", d.Properties.Featured)
	api.Get("/properties/search", d.Properties.Search)
	api.Get("/properties/:id", d.Properties.Detail)
	api.Post("/properties", d.Properties.Create)
	api.Put("/properties/:id", d.Properties.Update)
	api.Delete("/properties/:id", d.Properties.Delete)

	api.Get("/blog", d.Blog.List)
	api.Get("/blog/:id", d.Blog.Detail)
	api.Post("/blog", d.Blog.Create)
	api.Put("/blog/:id", d.Blog.Update)
	api.Delete("/blog/:id", d.Blog.Delete)

	api.Get("/messages", d.Messages.List)
	api.Get("/messages/:id", d.Messages.Detail)
	submit := append(append([]fiber.Handler{}, submitGuards...), d.Messages.Create)
	api.Post("/messages", submit...)
	api.Put("/messages/:id/read", d.Messages.MarkRead)
	api.Delete("/messages/:id", d.Messages.Delete)
}
