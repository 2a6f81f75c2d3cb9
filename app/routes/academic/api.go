package academic

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// GetAcademicYearsAPI lists the school's academic years with terms. When no
// year carries the stored current flag, the one covering today's date is
// marked current in the response.
func GetAcademicYearsAPI(c *fiber.Ctx, db *sql.DB) error {
	years, err := GetAcademicYears(db, c.Locals("school_id").(string))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch academic years",
		})
	}

	flagged := false
	for _, year := range years {
		if year.IsCurrent {
			flagged = true
			break
		}
	}
	if !flagged {
		for _, year := range years {
			if year.IsCurrentByDate() {
				year.IsCurrent = true
				break
			}
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"years":   years,
	})
}

// GetClassesAPI lists the school's classes with their sections
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := GetClasses(db, c.Locals("school_id").(string))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch classes",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"classes": classes,
	})
}
