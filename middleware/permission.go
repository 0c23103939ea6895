package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// MethodNotSupported returns a handler for operations that are disabled on
// purpose: fetching a single ambition, simulation or user by id, and user
// list/update/delete. Registering the route keeps the contract visible
// instead of answering with a generic 404.
func MethodNotSupported(message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusMethodNotAllowed, false, message, nil)
	}
}
