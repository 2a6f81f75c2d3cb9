package grades

import (
	"database/sql"
	"fmt"
	"time"

	"sukuu-backend/app/database"
	"sukuu-backend/app/models"
	"sukuu-backend/app/services"

	"github.com/google/uuid"
)

// IsTeacherAuthorized reports whether a teacher may submit marks for a
// (section, subject) pair. Any one of three links qualifies: the teacher is
// the section's class teacher, the teacher has a timetable slot for the pair,
// or the teacher holds a subject assignment covering the section's class (a
// null class on the assignment covers every class).
func IsTeacherAuthorized(db *sql.DB, section *models.Section, teacherID, subjectID string) (bool, error) {
	if section.ClassTeacherID != nil && *section.ClassTeacherID == teacherID {
		return true, nil
	}

	var entry models.TimetableEntry
	timetableQuery := `
		SELECT id, day, time_slot FROM timetable_entries
		WHERE school_id = $1 AND teacher_id = $2 AND section_id = $3 AND subject_id = $4
		LIMIT 1
	`
	err := db.QueryRow(timetableQuery, section.SchoolID, teacherID, section.ID, subjectID).
		Scan(&entry.ID, &entry.Day, &entry.TimeSlot)
	if err == nil {
		return true, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check timetable entries: %w", err)
	}

	var link models.StaffSubjectLevel
	var linkClassID sql.NullString
	levelQuery := `
		SELECT id, class_id FROM staff_subject_levels
		WHERE school_id = $1 AND teacher_id = $2 AND subject_id = $3
			AND (class_id IS NULL OR class_id = $4)
		LIMIT 1
	`
	err = db.QueryRow(levelQuery, section.SchoolID, teacherID, subjectID, section.ClassID).
		Scan(&link.ID, &linkClassID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check subject assignments: %w", err)
	}
	return true, nil
}

// GetExamSchedule fetches one exam schedule scoped to the school
func GetExamSchedule(db *sql.DB, schoolID, scheduleID string) (*models.ExamSchedule, error) {
	sched := &models.ExamSchedule{}
	query := `
		SELECT id, school_id, name, section_id, subject_id, max_marks, start_time, end_time
		FROM exam_schedules
		WHERE id = $1 AND school_id = $2 AND deleted_at IS NULL
	`
	err := db.QueryRow(query, scheduleID, schoolID).Scan(
		&sched.ID, &sched.SchoolID, &sched.Name, &sched.SectionID, &sched.SubjectID,
		&sched.MaxMarks, &sched.StartTime, &sched.EndTime,
	)
	if err != nil {
		return nil, err
	}
	return sched, nil
}

// GetAssignment fetches one assignment scoped to the school
func GetAssignment(db *sql.DB, schoolID, assignmentID string) (*models.Assignment, error) {
	assignment := &models.Assignment{}
	query := `
		SELECT id, school_id, title, section_id, subject_id, teacher_id, max_marks
		FROM assignments
		WHERE id = $1 AND school_id = $2 AND deleted_at IS NULL
	`
	err := db.QueryRow(query, assignmentID, schoolID).Scan(
		&assignment.ID, &assignment.SchoolID, &assignment.Title, &assignment.SectionID,
		&assignment.SubjectID, &assignment.TeacherID, &assignment.MaxMarks,
	)
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// BatchScope pins every record of one submission to the same assessment
// source and cohort. Exactly one of ExamScheduleID / AssignmentID is set.
type BatchScope struct {
	SchoolID       string
	SubjectID      string
	SectionID      string
	ClassID        string
	TermID         string
	AcademicYearID string
	ExamScheduleID *string
	AssignmentID   *string
}

// BatchResult counts what happened to each submitted pair.
type BatchResult struct {
	Created         int `json:"created"`
	Updated         int `json:"updated"`
	SkippedExisting int `json:"skippedExisting"`
}

// MarkEntry is one (student, marks) pair of a batch submission.
type MarkEntry struct {
	StudentID     string   `json:"student_id" validate:"required,uuid"`
	MarksObtained *float64 `json:"marks_obtained" validate:"omitempty,gte=0"`
}

// SaveGradesBatch applies a batch of mark submissions in one transaction using
// check-then-act per pair: an existing record for (student, source, subject)
// is overwritten or skipped depending on the caller's role, a missing one is
// created. Grade letters are derived from the scope's resolved grading scale.
// Records are written unpublished; publishing happens via the ranking flow.
func SaveGradesBatch(db *sql.DB, scope BatchScope, entries []MarkEntry, role models.RoleName) (BatchResult, error) {
	result := BatchResult{}

	configs, err := database.GetWeightConfigs(db, scope.SchoolID, scope.AcademicYearID)
	if err != nil {
		return result, err
	}
	bands := resolveBands(configs, scope)

	tx, err := db.Begin()
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	checkStmt, err := tx.Prepare(`
		SELECT id FROM grade_records
		WHERE student_id = $1 AND subject_id = $2
			AND (exam_schedule_id = $3 OR ($3 IS NULL AND exam_schedule_id IS NULL))
			AND (assignment_id = $4 OR ($4 IS NULL AND assignment_id IS NULL))
	`)
	if err != nil {
		return result, fmt.Errorf("failed to prepare check statement: %w", err)
	}
	defer checkStmt.Close()

	insertStmt, err := tx.Prepare(`
		INSERT INTO grade_records (
			id, school_id, student_id, subject_id, section_id, term_id, academic_year_id,
			exam_schedule_id, assignment_id, marks_obtained, grade_letter,
			is_published, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, false, $12, $12)
	`)
	if err != nil {
		return result, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer insertStmt.Close()

	updateStmt, err := tx.Prepare(`
		UPDATE grade_records SET marks_obtained = $1, grade_letter = $2, updated_at = $3
		WHERE id = $4
	`)
	if err != nil {
		return result, fmt.Errorf("failed to prepare update statement: %w", err)
	}
	defer updateStmt.Close()

	now := time.Now()
	for _, entry := range entries {
		var existingID string
		err := checkStmt.QueryRow(entry.StudentID, scope.SubjectID, scope.ExamScheduleID, scope.AssignmentID).Scan(&existingID)
		if err != nil && err != sql.ErrNoRows {
			return BatchResult{}, fmt.Errorf("failed to check existing record for student %s: %w", entry.StudentID, err)
		}
		exists := err == nil

		letter := services.MapGradeLetter(entry.MarksObtained, bands)

		switch services.DecideGradeWrite(role, exists) {
		case services.WriteCreate:
			_, err := insertStmt.Exec(
				uuid.New().String(), scope.SchoolID, entry.StudentID, scope.SubjectID,
				scope.SectionID, scope.TermID, scope.AcademicYearID,
				scope.ExamScheduleID, scope.AssignmentID, entry.MarksObtained, letter, now,
			)
			if err != nil {
				return BatchResult{}, fmt.Errorf("failed to insert grade for student %s: %w", entry.StudentID, err)
			}
			result.Created++
		case services.WriteOverwrite:
			_, err := updateStmt.Exec(entry.MarksObtained, letter, now, existingID)
			if err != nil {
				return BatchResult{}, fmt.Errorf("failed to update grade for student %s: %w", entry.StudentID, err)
			}
			result.Updated++
		case services.WriteSkip:
			result.SkippedExisting++
		}
	}

	if err := tx.Commit(); err != nil {
		return BatchResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}

// PublishCohortGrades flips a cohort's unpublished grade records to published.
// One-way and idempotent; an already-published record keeps its original
// published_at.
func PublishCohortGrades(db *sql.DB, schoolID, sectionID, termID, academicYearID string) (int, error) {
	query := `
		UPDATE grade_records
		SET is_published = true, published_at = COALESCE(published_at, NOW()), updated_at = NOW()
		WHERE school_id = $1 AND section_id = $2 AND term_id = $3 AND academic_year_id = $4
			AND is_published = false
	`
	res, err := db.Exec(query, schoolID, sectionID, termID, academicYearID)
	if err != nil {
		return 0, fmt.Errorf("failed to publish cohort grades: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

func resolveBands(configs []*models.WeightConfig, scope BatchScope) []*models.GradeBand {
	subjectID := scope.SubjectID
	threshold := services.ThresholdScope{
		AcademicYearID: scope.AcademicYearID,
		SubjectID:      &subjectID,
	}
	if scope.ClassID != "" {
		classID := scope.ClassID
		threshold.ClassID = &classID
	}
	cfg := services.MatchWeightConfig(configs, threshold)
	if cfg == nil || cfg.GradingScale == nil {
		return nil
	}
	return cfg.GradingScale.Bands
}
