package expenses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/routes/auth"
)

func SetupExpensesRoutes(app *fiber.App) {
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)

	// Guardians can see where the money went but only the treasurer spends it
	adminOnly := auth.RoleMiddleware(models.RoleAdmin)

	api.Get("/", GetExpensesAPI)
	api.Get("/:id", GetExpenseByIDAPI)
	api.Post("/", adminOnly, CreateExpenseAPI)
	api.Put("/:id", adminOnly, UpdateExpenseAPI)
	api.Delete("/:id", adminOnly, DeleteExpenseAPI)
}
