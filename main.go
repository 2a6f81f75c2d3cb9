package main

import (
	"log"
	"os"
	"sukuu-backend/app/config"
	"sukuu-backend/app/database"
	"sukuu-backend/app/routes/academic"
	"sukuu-backend/app/routes/analytics"
	"sukuu-backend/app/routes/auth"
	"sukuu-backend/app/routes/grades"
	"sukuu-backend/app/routes/rankings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// apiErrorHandler renders every error as a JSON envelope
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup academic lookup routes
	academic.SetupAcademicRoutes(app, config.GetDB())

	// Setup grades routes
	grades.SetupGradesRoutes(app, config.GetDB())

	// Setup rankings routes
	rankings.SetupRankingsRoutes(app, config.GetDB())

	// Setup analytics routes
	analytics.SetupAnalyticsRoutes(app, config.GetDB())

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
