package simulationRoutes

import (
	simulationController "enemcalc/controllers/simulation"
	"enemcalc/middleware"
	simulationValidator "enemcalc/validators/simulation"

	"github.com/gofiber/fiber/v2"
)

func SetupSimulationRoutes(app *fiber.App) {
	simulationGroup := app.Group("/simulations")

	simulationGroup.Get("/", middleware.JWTMiddleware, simulationController.GetSimulations)
	simulationGroup.Post("/", simulationValidator.Simulation(), middleware.JWTMiddleware, simulationController.SubmitSimulation)
	simulationGroup.Put("/:id", simulationValidator.Simulation(), middleware.JWTMiddleware, simulationController.UpdateSimulation)
	simulationGroup.Delete("/:id", middleware.JWTMiddleware, simulationController.DeleteSimulation)

	// Single-item fetch is disabled on purpose
	simulationGroup.Get("/:id", middleware.MethodNotSupported("Fetching a simulation by id is not supported!"))
}
