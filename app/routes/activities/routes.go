package activities

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/routes/auth"
)

func SetupActivitiesRoutes(app *fiber.App) {
	api := app.Group("/api/activities")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetActivitiesAPI)
	api.Get("/:id", GetActivityByIDAPI)
	api.Post("/", CreateActivityAPI)
	api.Put("/:id", UpdateActivityAPI)
	api.Delete("/:id", DeleteActivityAPI)
}
