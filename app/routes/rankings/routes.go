package rankings

import (
	"database/sql"

	"sukuu-backend/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupRankingsRoutes sets up all ranking-related routes
func SetupRankingsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/rankings")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetSectionRanking(c, db) })
	api.Post("/recompute", func(c *fiber.Ctx) error { return RecomputeRanking(c, db) })
}
