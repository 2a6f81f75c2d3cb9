package grades

import (
	"database/sql"
	"errors"
	"log"

	"sukuu-backend/app/database"
	"sukuu-backend/app/models"
	"sukuu-backend/app/routes/rankings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

var validate = validator.New()

type batchRequest struct {
	SubjectID      string      `json:"subject_id" validate:"required,uuid"`
	SectionID      string      `json:"section_id" validate:"required,uuid"`
	TermID         string      `json:"term_id" validate:"required,uuid"`
	AcademicYearID string      `json:"academic_year_id" validate:"required,uuid"`
	ExamScheduleID *string     `json:"exam_schedule_id" validate:"omitempty,uuid"`
	AssignmentID   *string     `json:"assignment_id" validate:"omitempty,uuid"`
	Results        []MarkEntry `json:"results" validate:"required,min=1,dive"`
}

// SubmitGradesBatch writes a batch of marks for one (section, subject,
// assessment source) scope. Teachers must hold a teaching link to the pair
// and may only create; administrators may overwrite. A failed authorization
// aborts the whole batch before any write. Every successful batch triggers an
// unpublished ranking recompute for the cohort.
func SubmitGradesBatch(c *fiber.Ctx, db *sql.DB) error {
	var request batchRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationDetail(err))
	}
	if (request.ExamScheduleID == nil) == (request.AssignmentID == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Exactly one of exam_schedule_id or assignment_id must be set",
		})
	}

	schoolID := c.Locals("school_id").(string)
	userID := c.Locals("user_id").(string)
	role := models.PrimaryRole(c.Locals("user_roles").([]string))

	section, err := database.GetSectionByID(db, schoolID, request.SectionID)
	if err == sql.ErrNoRows {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Section not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch section",
		})
	}

	if request.ExamScheduleID != nil {
		schedule, err := GetExamSchedule(db, schoolID, *request.ExamScheduleID)
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Exam schedule not found",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch exam schedule",
			})
		}
		if schedule.SectionID != request.SectionID || schedule.SubjectID != request.SubjectID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Exam schedule does not belong to this section and subject",
			})
		}
	} else {
		assignment, err := GetAssignment(db, schoolID, *request.AssignmentID)
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Assignment not found",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch assignment",
			})
		}
		if assignment.SectionID != request.SectionID || assignment.SubjectID != request.SubjectID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Assignment does not belong to this section and subject",
			})
		}
	}

	if role == models.RoleTeacher {
		authorized, err := IsTeacherAuthorized(db, section, userID, request.SubjectID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to verify teaching assignment",
			})
		}
		if !authorized {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You are not assigned to teach this subject in this section",
			})
		}
	}

	scope := BatchScope{
		SchoolID:       schoolID,
		SubjectID:      request.SubjectID,
		SectionID:      request.SectionID,
		ClassID:        section.ClassID,
		TermID:         request.TermID,
		AcademicYearID: request.AcademicYearID,
		ExamScheduleID: request.ExamScheduleID,
		AssignmentID:   request.AssignmentID,
	}

	result, err := SaveGradesBatch(db, scope, request.Results, role)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A grade record for this assessment already exists",
			})
		}
		log.Printf("Failed to save grades batch: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save grades",
		})
	}

	cohort := rankings.Cohort{
		SchoolID:       schoolID,
		SectionID:      request.SectionID,
		TermID:         request.TermID,
		AcademicYearID: request.AcademicYearID,
	}
	_, recomputeErr := rankings.RecomputeCohort(db, cohort, false)
	if recomputeErr != nil {
		log.Printf("Ranking recompute after grade batch failed: %v", recomputeErr)
	}

	status, body := batchResponse(result, recomputeErr)
	return c.Status(status).JSON(body)
}

// batchResponse maps a committed batch outcome onto an HTTP status and body.
// The write counts are always reported; a failed recompute after the writes
// committed is surfaced as an error with its own message so the caller knows
// the cohort snapshot is stale even though the grades were saved.
func batchResponse(result BatchResult, recomputeErr error) (int, fiber.Map) {
	body := fiber.Map{
		"created":         result.Created,
		"updated":         result.Updated,
		"skippedExisting": result.SkippedExisting,
	}
	if recomputeErr != nil {
		body["success"] = false
		body["message"] = "Grades saved but ranking recompute failed"
		return fiber.StatusInternalServerError, body
	}
	body["success"] = true
	body["message"] = "Grades processed"
	return fiber.StatusOK, body
}

// PublishGrades marks a cohort's grade records as published. Admin only; the
// transition is one-way and repeat calls are no-ops for already-published rows.
func PublishGrades(c *fiber.Ctx, db *sql.DB) error {
	var request struct {
		SectionID      string `json:"section_id" validate:"required,uuid"`
		TermID         string `json:"term_id" validate:"required,uuid"`
		AcademicYearID string `json:"academic_year_id" validate:"required,uuid"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(validationDetail(err))
	}

	role := models.PrimaryRole(c.Locals("user_roles").([]string))
	if role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only administrators may publish grades",
		})
	}

	count, err := PublishCohortGrades(db, c.Locals("school_id").(string),
		request.SectionID, request.TermID, request.AcademicYearID)
	if err != nil {
		log.Printf("Failed to publish cohort grades: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to publish grades",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"published": count,
	})
}

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
