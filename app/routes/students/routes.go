package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/models"
	"github.com/mattmosz/APP-TESO/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	// Guardians may read the roster but only the treasurer changes it
	adminOnly := auth.RoleMiddleware(models.RoleAdmin)

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", adminOnly, CreateStudentAPI)
	api.Put("/:id", adminOnly, UpdateStudentAPI)
	api.Delete("/:id", adminOnly, DeleteStudentAPI)
}
