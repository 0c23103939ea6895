package simulationValidator

import (
	"enemcalc/middleware"
	"enemcalc/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SimulationRequest is the validated submit/update payload passed via
// c.Locals. Score fields are pointers so a legitimate 0 score is accepted
// while a missing field is rejected.
type SimulationRequest struct {
	Name          *string  `json:"name"`
	Math          *float64 `json:"math"`
	Languages     *float64 `json:"languages"`
	Science       *float64 `json:"science"`
	HumanScience  *float64 `json:"humanScience"`
	Essay         *float64 `json:"essay"`
	OfficialScore *int     `json:"officialScore"`
}

func validateScore(errors map[string]string, field string, value *float64) {
	if value == nil {
		errors[field] = "Score is required!"
	}
}

// Simulation validates the submit/update payload. Every field is required;
// the official flag must be 0 (simulation) or 1 (official score).
func Simulation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SimulationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == nil || len(strings.TrimSpace(*reqData.Name)) == 0 {
			errors["name"] = "Name is required!"
		}

		validateScore(errors, "math", reqData.Math)
		validateScore(errors, "languages", reqData.Languages)
		validateScore(errors, "science", reqData.Science)
		validateScore(errors, "humanScience", reqData.HumanScience)
		validateScore(errors, "essay", reqData.Essay)

		if reqData.OfficialScore == nil {
			errors["officialScore"] = "Official score flag is required!"
		} else if *reqData.OfficialScore != models.ScoreSimulation && *reqData.OfficialScore != models.ScoreOfficial {
			errors["officialScore"] = "Official score flag must be 0 or 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSimulation", reqData)
		return c.Next()
	}
}
