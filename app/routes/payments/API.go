package payments

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/mattmosz/APP-TESO/app/config"
	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/validation"
)

func GetPaymentsAPI(c *fiber.Ctx) error {
	payments, err := GetAllPayments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

func GetPaymentsByActivityAPI(c *fiber.Ctx) error {
	payments, err := GetPaymentsByActivity(config.GetDB(), c.Params("activityId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

func GetPaymentsByStudentAPI(c *fiber.Ctx) error {
	payments, err := GetPaymentsByStudent(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}
	return c.JSON(payments)
}

func GetPaymentByIDAPI(c *fiber.Ctx) error {
	payment, err := GetPaymentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	return c.JSON(payment)
}

func normalizePayment(p *models.Payment) {
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	// Joined fields are output-only
	p.StudentName = ""
	p.ActivityName = ""
	p.FeePerStudent = 0
}

func CreatePaymentAPI(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if payment.Receipt != nil {
		if err := validation.Check(payment.Receipt); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	normalizePayment(&payment)
	if err := CreatePayment(config.GetDB(), &payment); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown student or activity"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	created, err := GetPaymentByID(config.GetDB(), payment.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	return c.Status(201).JSON(created)
}

func UpdatePaymentAPI(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(&payment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if payment.Receipt != nil {
		if err := validation.Check(payment.Receipt); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	normalizePayment(&payment)
	payment.ID = c.Params("id")
	if err := UpdatePayment(config.GetDB(), &payment); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown student or activity"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update payment"})
	}

	updated, err := GetPaymentByID(config.GetDB(), payment.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment"})
	}
	return c.JSON(updated)
}

func DeletePaymentAPI(c *fiber.Ctx) error {
	if err := DeletePayment(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	return c.JSON(fiber.Map{"message": "Payment deleted successfully"})
}
