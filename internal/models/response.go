package models

import (
	"github.com/gofiber/fiber/v2"
)

// Respond writes the success envelope. Extra top-level fields (data,
// threads, ...) are merged in so handlers can keep the payload key the
// clients expect.
func Respond(c *fiber.Ctx, status int, message string, fields fiber.Map) error {
	body := fiber.Map{
		"code":    status,
		"status":  "success",
		"message": message,
	}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}
