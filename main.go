package main

import (
	"enemcalc/config"
	"enemcalc/database"
	ambitionRoutes "enemcalc/routers/ambitionRoutes"
	authRoutes "enemcalc/routers/authRoutes"
	simulationRoutes "enemcalc/routers/simulationRoutes"
	userRoutes "enemcalc/routers/userRoutes"
	"enemcalc/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	ambitionRoutes.SetupAmbitionRoutes(app)
	simulationRoutes.SetupSimulationRoutes(app)

	// Hard-purge of soft-deleted rows runs outside the request path
	utils.StartPurgeScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
