package analytics

import (
	"database/sql"
	"log"

	"sukuu-backend/app/database"
	"sukuu-backend/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetStudentAnalytics builds the full analytics payload for one student from
// published grade records only: the grade distribution, per-subject score
// series and predicted next marks. Optional term_id and academic_year_id
// query parameters narrow the history.
func GetStudentAnalytics(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	schoolID := c.Locals("school_id").(string)

	records, err := GetPublishedGradeRecords(db, schoolID, studentID, c.Query("term_id"), c.Query("academic_year_id"))
	if err != nil {
		log.Printf("Failed to fetch analytics records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch grade records",
		})
	}

	distribution := services.AggregateDistribution(records)
	series := services.BuildSubjectSeries(records)
	predictions := services.CompilePredictions(series)

	return c.JSON(fiber.Map{
		"success":     true,
		"student_id":  studentID,
		"grades":      records,
		"average":     distribution.Average,
		"letterDist":  distribution.LetterDist,
		"subjects":    distribution.Subjects,
		"series":      series,
		"predictions": predictions,
	})
}

// GetPassThreshold resolves the pass mark for a configuration scope. Falls
// back to the platform default when no matching scale defines a passing band.
func GetPassThreshold(c *fiber.Ctx, db *sql.DB) error {
	academicYearID := c.Query("academic_year_id")
	if academicYearID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "academic_year_id is required",
		})
	}

	configs, err := database.GetWeightConfigs(db, c.Locals("school_id").(string), academicYearID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch weight configs",
		})
	}

	scope := services.ThresholdScope{AcademicYearID: academicYearID}
	if classID := c.Query("class_id"); classID != "" {
		scope.ClassID = &classID
	}
	if subjectID := c.Query("subject_id"); subjectID != "" {
		scope.SubjectID = &subjectID
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"threshold": services.ResolvePassThreshold(configs, scope),
	})
}
