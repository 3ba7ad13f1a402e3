package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mattmosz/APP-TESO/app/routes/auth"
)

func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPaymentsAPI)
	api.Get("/activity/:activityId", GetPaymentsByActivityAPI)
	api.Get("/student/:studentId", GetPaymentsByStudentAPI)
	api.Get("/:id", GetPaymentByIDAPI)
	api.Post("/", CreatePaymentAPI)
	api.Put("/:id", UpdatePaymentAPI)
	api.Delete("/:id", DeletePaymentAPI)
}
