package annualplan

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/config"
	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/validation"
)

func GetAnnualPlanAPI(c *fiber.Ctx) error {
	plan, err := GetAnnualPlan(config.GetDB())
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No annual plan uploaded"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch annual plan"})
	}
	return c.JSON(plan)
}

// UploadAnnualPlanAPI stores the document, replacing any existing one.
func UploadAnnualPlanAPI(c *fiber.Ctx) error {
	var plan models.AnnualPlan
	if err := c.BodyParser(&plan); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(&plan); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ReplaceAnnualPlan(config.GetDB(), &plan); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store annual plan"})
	}

	return c.Status(201).JSON(plan)
}

func DeleteAnnualPlanAPI(c *fiber.Ctx) error {
	if err := DeleteAnnualPlan(config.GetDB()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete annual plan"})
	}
	return c.JSON(fiber.Map{"message": "Annual plan deleted successfully"})
}
