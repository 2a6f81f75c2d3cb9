package analytics

import (
	"database/sql"

	"sukuu-backend/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAnalyticsRoutes sets up all analytics-related routes
func SetupAnalyticsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/analytics")
	api.Use(auth.AuthMiddleware)
	api.Get("/students/:studentId", func(c *fiber.Ctx) error { return GetStudentAnalytics(c, db) })
	api.Get("/pass-threshold", func(c *fiber.Ctx) error { return GetPassThreshold(c, db) })
}
