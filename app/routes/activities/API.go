package activities

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/config"
	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/validation"
)

func GetActivitiesAPI(c *fiber.Ctx) error {
	activities, err := GetAllActivities(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}
	return c.JSON(activities)
}

func GetActivityByIDAPI(c *fiber.Ctx) error {
	activity, err := GetActivityByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity"})
	}
	return c.JSON(activity)
}

type activityRequest struct {
	Name            string    `json:"name" validate:"required"`
	Date            time.Time `json:"date" validate:"required"`
	RequiresFee     *bool     `json:"requires_fee"`
	FeePerStudent   float64   `json:"fee_per_student" validate:"gte=0"`
	TotalExpected   float64   `json:"total_expected" validate:"gte=0"`
	PaymentDeadline time.Time `json:"payment_deadline"`
	Description     string    `json:"description"`
	IsActive        *bool     `json:"is_active"`
}

func (req *activityRequest) toModel() *models.Activity {
	a := &models.Activity{
		Name:            req.Name,
		Date:            req.Date,
		RequiresFee:     true,
		FeePerStudent:   req.FeePerStudent,
		TotalExpected:   req.TotalExpected,
		PaymentDeadline: req.PaymentDeadline,
		Description:     req.Description,
		IsActive:        true,
	}
	if req.RequiresFee != nil {
		a.RequiresFee = *req.RequiresFee
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if a.PaymentDeadline.IsZero() {
		a.PaymentDeadline = a.Date
	}
	return a
}

func CreateActivityAPI(c *fiber.Ctx) error {
	var req activityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// total_expected is taken as supplied; the client conventionally sends
	// fee_per_student x active student count and the server never recomputes it
	activity := req.toModel()
	if err := CreateActivity(config.GetDB(), activity); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create activity"})
	}

	return c.Status(201).JSON(activity)
}

func UpdateActivityAPI(c *fiber.Ctx) error {
	var req activityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	activity := req.toModel()
	activity.ID = c.Params("id")
	if err := UpdateActivity(config.GetDB(), activity); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update activity"})
	}

	return c.JSON(activity)
}

func DeleteActivityAPI(c *fiber.Ctx) error {
	if err := DeleteActivity(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Activity not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete activity"})
	}
	return c.JSON(fiber.Map{"message": "Activity deleted successfully"})
}
