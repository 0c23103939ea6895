package ambitionValidator

import (
	"enemcalc/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AmbitionRequest is the validated create/update payload passed via c.Locals.
// Weight fields are pointers so an absent field can be told apart from a
// submitted zero: a nil weight is missing, a zero weight is present but below
// the minimum of 1.
type AmbitionRequest struct {
	City               *string `json:"city"`
	Course             *string `json:"course"`
	College            *string `json:"college"`
	MathWeight         *uint   `json:"mathWeight"`
	LanguagesWeight    *uint   `json:"languagesWeight"`
	ScienceWeight      *uint   `json:"scienceWeight"`
	HumanScienceWeight *uint   `json:"humanScienceWeight"`
	EssayWeight        *uint   `json:"essayWeight"`
}

func validateText(errors map[string]string, field string, value *string) {
	if value == nil || len(strings.TrimSpace(*value)) == 0 {
		errors[field] = "Field is required!"
	}
}

func validateWeight(errors map[string]string, field string, value *uint) {
	if value == nil {
		errors[field] = "Weight is required!"
	} else if *value < 1 {
		errors[field] = "Weight must be at least 1!"
	}
}

// Ambition validates the create/update payload. All nine fields are required
// together; there is no partial update.
func Ambition() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AmbitionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateText(errors, "city", reqData.City)
		validateText(errors, "course", reqData.Course)
		validateText(errors, "college", reqData.College)

		validateWeight(errors, "mathWeight", reqData.MathWeight)
		validateWeight(errors, "languagesWeight", reqData.LanguagesWeight)
		validateWeight(errors, "scienceWeight", reqData.ScienceWeight)
		validateWeight(errors, "humanScienceWeight", reqData.HumanScienceWeight)
		validateWeight(errors, "essayWeight", reqData.EssayWeight)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAmbition", reqData)
		return c.Next()
	}
}
