package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Error payloads mirror the client's expectation: {"message": "..."}.

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

// pathID parses the numeric :id segment. Malformed ids never reach the store.
func pathID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
