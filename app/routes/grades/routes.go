package grades

import (
	"database/sql"

	"sukuu-backend/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupGradesRoutes sets up all grade-related routes
func SetupGradesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)
	api.Post("/batch", func(c *fiber.Ctx) error { return SubmitGradesBatch(c, db) })
	api.Post("/publish", func(c *fiber.Ctx) error { return PublishGrades(c, db) })
}
