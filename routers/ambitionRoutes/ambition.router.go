package ambitionRoutes

import (
	ambitionController "enemcalc/controllers/ambition"
	"enemcalc/middleware"
	ambitionValidator "enemcalc/validators/ambition"

	"github.com/gofiber/fiber/v2"
)

func SetupAmbitionRoutes(app *fiber.App) {
	ambitionGroup := app.Group("/ambitions")

	ambitionGroup.Get("/", middleware.JWTMiddleware, ambitionController.GetAmbitions)
	ambitionGroup.Post("/", ambitionValidator.Ambition(), middleware.JWTMiddleware, ambitionController.CreateAmbition)
	ambitionGroup.Put("/:id", ambitionValidator.Ambition(), middleware.JWTMiddleware, ambitionController.UpdateAmbition)
	ambitionGroup.Delete("/:id", middleware.JWTMiddleware, ambitionController.DeleteAmbition)

	// Single-item fetch is disabled on purpose
	ambitionGroup.Get("/:id", middleware.MethodNotSupported("Fetching an ambition by id is not supported!"))
}
