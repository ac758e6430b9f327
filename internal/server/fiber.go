//go:build fiber

package server

import (
	"github.com/gofiber/fiber/v2"
)

// Fiber returns a Fiber handler for POST /estimate. Build with
// -tags=fiber to enable.
//
//	app.Post("/estimate", server.Fiber(server.DefaultConfig()))
func Fiber(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req estimateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		resp := estimate(cfg, req.Password, req.UserInputs)
		status := fiber.StatusOK
		if !resp.Passed {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(resp)
	}
}
