package academic

import (
	"database/sql"

	"sukuu-backend/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAcademicRoutes sets up the academic lookup routes
func SetupAcademicRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/academic")
	api.Use(auth.AuthMiddleware)
	api.Get("/years", func(c *fiber.Ctx) error { return GetAcademicYearsAPI(c, db) })
	api.Get("/classes", func(c *fiber.Ctx) error { return GetClassesAPI(c, db) })
}
