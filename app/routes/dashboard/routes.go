package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI)
	api.Get("/debtors", GetDebtorsAPI)
	api.Get("/debtors/export", ExportDebtorsAPI)
}
