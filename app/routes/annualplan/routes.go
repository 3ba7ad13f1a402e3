package annualplan

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/routes/auth"
)

func SetupAnnualPlanRoutes(app *fiber.App) {
	api := app.Group("/api/annual-plan")
	api.Use(auth.AuthMiddleware)

	adminOnly := auth.RoleMiddleware(models.RoleAdmin)

	api.Get("/", GetAnnualPlanAPI)
	api.Post("/", adminOnly, UploadAnnualPlanAPI)
	api.Delete("/", adminOnly, DeleteAnnualPlanAPI)
}
