package handlers

import (
	"github.com/gofiber/fiber/v2"

	"homeharbor/internal/domain"
	applog "homeharbor/internal/log"
	"homeharbor/internal/services"
	"homeharbor/internal/validate"
)

type MessageHandler struct {
	Inbox *services.InboxService
}

// GET /api/messages
func (h *MessageHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.Inbox.ListMessages())
}

// GET /api/messages/:id
func (h *MessageHandler) Detail(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid message ID")
	}
	m, ok := h.Inbox.GetMessage(id)
	if !ok {
		return notFound(c, "Message not found")
	}
	return c.JSON(m)
}

// POST /api/messages — the public contact form.
func (h *MessageHandler) Create(c *fiber.Ctx) error {
	var in domain.NewMessage
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validate.NewMessage(in); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"entity": "message"})
		return badRequest(c, err.Error())
	}
	m := h.Inbox.Submit(in)
	applog.Info(c, "message.received", map[string]any{"id": m.ID, "subject": m.Subject})
	return c.Status(fiber.StatusCreated).JSON(m)
}

// PUT /api/messages/:id/read
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid message ID")
	}
	m, ok := h.Inbox.MarkRead(id)
	if !ok {
		return notFound(c, "Message not found")
	}
	applog.Audit(c, "message.read", map[string]any{"id": id})
	return c.JSON(m)
}

// DELETE /api/messages/:id
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid message ID")
	}
	if !h.Inbox.DeleteMessage(id) {
		return notFound(c, "Message not found")
	}
	applog.Audit(c, "message.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
