package ambitionController

import (
	"enemcalc/database"
	"enemcalc/middleware"
	"enemcalc/models"
	ambitionValidator "enemcalc/validators/ambition"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAmbitions lists the authenticated user's ambitions in insertion order.
func GetAmbitions(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var ambitions []models.Ambition
	if err := database.Database.Db.Where("user_id = ?", userId).Order("id").Find(&ambitions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ambitions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ambitions fetched successfully!", ambitions)
}

func CreateAmbition(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAmbition").(*ambitionValidator.AmbitionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ambition := models.Ambition{
		UserID:             userId,
		City:               *reqData.City,
		Course:             *reqData.Course,
		College:            *reqData.College,
		MathWeight:         *reqData.MathWeight,
		LanguagesWeight:    *reqData.LanguagesWeight,
		ScienceWeight:      *reqData.ScienceWeight,
		HumanScienceWeight: *reqData.HumanScienceWeight,
		EssayWeight:        *reqData.EssayWeight,
	}

	if err := database.Database.Db.Create(&ambition).Error; err != nil {
		log.Printf("Error saving ambition to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create ambition!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Ambition created successfully!", ambition)
}

// UpdateAmbition replaces every field of an owned ambition. There is no
// partial update; the validator already required all nine fields.
func UpdateAmbition(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAmbition").(*ambitionValidator.AmbitionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ambitionId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ambition id!", nil)
	}

	var ambition models.Ambition
	if err := database.Database.Db.Where("id = ? AND user_id = ?", ambitionId, userId).First(&ambition).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "The ambition does not exist!", nil)
	}

	ambition.City = *reqData.City
	ambition.Course = *reqData.Course
	ambition.College = *reqData.College
	ambition.MathWeight = *reqData.MathWeight
	ambition.LanguagesWeight = *reqData.LanguagesWeight
	ambition.ScienceWeight = *reqData.ScienceWeight
	ambition.HumanScienceWeight = *reqData.HumanScienceWeight
	ambition.EssayWeight = *reqData.EssayWeight

	if err := database.Database.Db.Save(&ambition).Error; err != nil {
		log.Printf("Error updating ambition: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update ambition!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ambition updated successfully!", ambition)
}

// DeleteAmbition removes an owned ambition and every simulation that
// references it, in one transaction.
func DeleteAmbition(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ambitionId, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ambition id!", nil)
	}

	var ambition models.Ambition
	if err := database.Database.Db.Where("id = ? AND user_id = ?", ambitionId, userId).First(&ambition).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "The ambition does not exist!", nil)
	}

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ambition_id = ?", ambition.ID).Delete(&models.Simulation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ambition).Error
	})

	if err != nil {
		log.Printf("Error deleting ambition: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete ambition!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ambition deleted successfully!", nil)
}
