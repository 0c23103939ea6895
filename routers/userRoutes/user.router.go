package userRoutes

import (
	authController "enemcalc/controllers/auth"
	"enemcalc/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, authController.Profile)

	// Accounts are self-lookup and create only
	userGroup.Get("/", middleware.MethodNotSupported("Listing users is not supported!"))
	userGroup.Get("/:id", middleware.MethodNotSupported("Fetching a user by id is not supported!"))
	userGroup.Put("/:id", middleware.MethodNotSupported("Updating a user is not supported!"))
	userGroup.Delete("/:id", middleware.MethodNotSupported("Deleting a user is not supported!"))
}
