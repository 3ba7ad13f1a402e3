package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/mattmosz/APP-TESO/app/config"
	"github.com/mattmosz/APP-TESO/app/database"
	"github.com/mattmosz/APP-TESO/app/routes/activities"
	"github.com/mattmosz/APP-TESO/app/routes/annualplan"
	"github.com/mattmosz/APP-TESO/app/routes/auth"
	"github.com/mattmosz/APP-TESO/app/routes/dashboard"
	"github.com/mattmosz/APP-TESO/app/routes/expenses"
	"github.com/mattmosz/APP-TESO/app/routes/payments"
	"github.com/mattmosz/APP-TESO/app/routes/students"
)

// jsonErrorHandler keeps every failure inside the API's single error envelope.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	// Dates in the treasury (deadlines, activity dates) are local school dates
	loc, err := time.LoadLocation("America/Guayaquil")
	if err != nil {
		log.Printf("Warning: failed to load America/Guayaquil location, falling back to UTC-5: %v", err)
		time.Local = time.FixedZone("ECT", -5*60*60)
	} else {
		time.Local = loc
	}

	config.Init()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: jsonErrorHandler,
		// Receipts and the annual plan arrive base64-embedded in JSON bodies
		BodyLimit: 25 * 1024 * 1024,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Liveness; the client pings this to keep free-tier hosting awake
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Class treasury API running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	activities.SetupActivitiesRoutes(app)
	payments.SetupPaymentsRoutes(app)
	expenses.SetupExpensesRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	annualplan.SetupAnnualPlanRoutes(app)

	log.Printf("Server listening on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
