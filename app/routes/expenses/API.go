package expenses

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/mattmosz/APP-TESO/app/config"
	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/validation"
)

func GetExpensesAPI(c *fiber.Ctx) error {
	expenses, err := GetAllExpenses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}
	return c.JSON(expenses)
}

func GetExpenseByIDAPI(c *fiber.Ctx) error {
	expense, err := GetExpenseByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}
	return c.JSON(expense)
}

func normalizeExpense(e *models.Expense) {
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	e.ActivityName = "" // output-only
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	var expense models.Expense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if expense.Invoice != nil {
		if err := validation.Check(expense.Invoice); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	normalizeExpense(&expense)
	if err := CreateExpense(config.GetDB(), &expense); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown activity"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create expense"})
	}

	created, err := GetExpenseByID(config.GetDB(), expense.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}
	return c.Status(201).JSON(created)
}

func UpdateExpenseAPI(c *fiber.Ctx) error {
	var expense models.Expense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Check(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if expense.Invoice != nil {
		if err := validation.Check(expense.Invoice); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	normalizeExpense(&expense)
	expense.ID = c.Params("id")
	if err := UpdateExpense(config.GetDB(), &expense); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Expense not found"})
		}
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown activity"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update expense"})
	}

	updated, err := GetExpenseByID(config.GetDB(), expense.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}
	return c.JSON(updated)
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	if err := DeleteExpense(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Expense not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}
