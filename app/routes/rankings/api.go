package rankings

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validationDetail converts validator errors into per-field messages
func validationDetail(err error) fiber.Map {
	fields := fiber.Map{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return fiber.Map{"error": "Validation failed", "fields": fields}
}

// RecomputeRanking recomputes and upserts one cohort's ranking snapshot.
// Publishing is opt-in; a recompute with publish=false never unpublishes.
func RecomputeRanking(c *fiber.Ctx, db *sql.DB) error {
	var request struct {
		SectionID      string `json:"section_id" validate:"required,uuid"`
		TermID         string `json:"term_id" validate:"required,uuid"`
		AcademicYearID string `json:"academic_year_id" validate:"required,uuid"`
		Publish        bool   `json:"publish"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationDetail(err))
	}

	cohort := Cohort{
		SchoolID:       c.Locals("school_id").(string),
		SectionID:      request.SectionID,
		TermID:         request.TermID,
		AcademicYearID: request.AcademicYearID,
	}

	count, err := RecomputeCohort(db, cohort, request.Publish)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to recompute ranking",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   count,
	})
}

// GetSectionRanking returns the stored snapshot rows for one cohort
func GetSectionRanking(c *fiber.Ctx, db *sql.DB) error {
	sectionID := c.Query("section_id")
	termID := c.Query("term_id")
	if sectionID == "" || termID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "section_id and term_id are required",
		})
	}

	schoolID := c.Locals("school_id").(string)
	snapshots, err := GetSnapshotsByCohort(db, schoolID, sectionID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch ranking",
		})
	}

	// student names accompany the standings for display
	students, err := GetSectionStudents(db, schoolID, sectionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch section students",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"rankings": snapshots,
		"students": students,
	})
}
