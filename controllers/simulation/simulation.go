package simulationController

import (
	"enemcalc/database"
	"enemcalc/middleware"
	"enemcalc/models"
	"enemcalc/scoring"
	simulationValidator "enemcalc/validators/simulation"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

func ambitionWeights(ambition models.Ambition) scoring.Weights {
	return scoring.Weights{
		Math:         ambition.MathWeight,
		Languages:    ambition.LanguagesWeight,
		Science:      ambition.ScienceWeight,
		HumanScience: ambition.HumanScienceWeight,
		Essay:        ambition.EssayWeight,
	}
}

func requestScores(reqData *simulationValidator.SimulationRequest) scoring.Scores {
	return scoring.Scores{
		Math:         *reqData.Math,
		Languages:    *reqData.Languages,
		Science:      *reqData.Science,
		HumanScience: *reqData.HumanScience,
		Essay:        *reqData.Essay,
	}
}

// GetSimulations lists the authenticated user's simulations. "?period=month"
// narrows the list to the current calendar month.
func GetSimulations(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	query := database.Database.Db.Where("user_id = ?", userId)
	if c.Query("period") == "month" {
		query = query.Where("created_at >= ?", now.BeginningOfMonth())
	}

	var simulations []models.Simulation
	if err := query.Order("id").Find(&simulations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch simulations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Simulations fetched successfully!", simulations)
}

// SubmitSimulation creates one simulation per ambition the user owns. Each
// row gets the submitted raw scores, a final score computed with that
// ambition's weights, and a name decorated with the ambition's descriptors.
// The whole batch is one transaction: a failure mid-loop creates nothing.
func SubmitSimulation(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSimulation").(*simulationValidator.SimulationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ambitions []models.Ambition
	if err := database.Database.Db.Where("user_id = ?", userId).Order("id").Find(&ambitions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ambitions!", nil)
	}

	if len(ambitions) == 0 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"ambitions": "No ambition registered!",
		})
	}

	scores := requestScores(reqData)

	var simulations []models.Simulation
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		for _, ambition := range ambitions {
			finalScore, err := scoring.ComputeFinalScore(scores, ambitionWeights(ambition))
			if err != nil {
				return err
			}

			simulation := models.Simulation{
				UserID:        userId,
				AmbitionID:    ambition.ID,
				Name:          fmt.Sprintf("%s - %s - %s %s", *reqData.Name, ambition.Course, ambition.College, ambition.City),
				Math:          *reqData.Math,
				Languages:     *reqData.Languages,
				Science:       *reqData.Science,
				HumanScience:  *reqData.HumanScience,
				Essay:         *reqData.Essay,
				OfficialScore: *reqData.OfficialScore,
				FinalScore:    finalScore,
			}

			if err := tx.Create(&simulation).Error; err != nil {
				return err
			}
			simulations = append(simulations, simulation)
		}
		return nil
	})

	if err != nil {
		log.Printf("Error creating simulations: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create simulations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Simulations created successfully!", simulations)
}

// UpdateSimulation overwrites an owned simulation's scores, name and flag.
// The final score is recomputed with the linked ambition's current weights,
// not the weights in force when the simulation was created. The name is
// stored verbatim here, without the ambition descriptors added on creation.
func UpdateSimulation(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSimulation").(*simulationValidator.SimulationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	simulationId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid simulation id!", nil)
	}

	var simulation models.Simulation
	if err := database.Database.Db.Where("id = ? AND user_id = ?", simulationId, userId).First(&simulation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "The simulation does not exist!", nil)
	}

	// The ambition always exists while its simulations do: deletion cascades.
	// A miss here is a consistency violation, not a user-facing 404.
	var ambition models.Ambition
	if err := database.Database.Db.First(&ambition, simulation.AmbitionID).Error; err != nil {
		log.Printf("Simulation %d references missing ambition %d: %v", simulation.ID, simulation.AmbitionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update simulation!", nil)
	}

	finalScore, err := scoring.ComputeFinalScore(requestScores(reqData), ambitionWeights(ambition))
	if err != nil {
		log.Printf("Error computing final score for simulation %d: %v", simulation.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update simulation!", nil)
	}

	simulation.Name = *reqData.Name
	simulation.Math = *reqData.Math
	simulation.Languages = *reqData.Languages
	simulation.Science = *reqData.Science
	simulation.HumanScience = *reqData.HumanScience
	simulation.Essay = *reqData.Essay
	simulation.OfficialScore = *reqData.OfficialScore
	simulation.FinalScore = finalScore

	if err := database.Database.Db.Save(&simulation).Error; err != nil {
		log.Printf("Error updating simulation: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update simulation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Simulation updated successfully!", simulation)
}

func DeleteSimulation(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	simulationId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid simulation id!", nil)
	}

	var simulation models.Simulation
	if err := database.Database.Db.Where("id = ? AND user_id = ?", simulationId, userId).First(&simulation).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "The simulation does not exist!", nil)
	}

	if err := database.Database.Db.Delete(&simulation).Error; err != nil {
		log.Printf("Error deleting simulation: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete simulation!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Simulation deleted successfully!", nil)
}
