package analytics

import (
	"database/sql"
	"fmt"

	"sukuu-backend/app/models"
)

// GetPublishedGradeRecords fetches a student's published grade records with
// subject names joined, oldest first. Optional term and academic year filters
// narrow the history; empty strings mean no filter.
func GetPublishedGradeRecords(db *sql.DB, schoolID, studentID, termID, academicYearID string) ([]*models.GradeRecord, error) {
	query := `
		SELECT gr.id, gr.school_id, gr.student_id, gr.subject_id, gr.section_id,
			gr.term_id, gr.academic_year_id, gr.exam_schedule_id, gr.assignment_id,
			gr.marks_obtained, gr.grade_letter, gr.is_published, gr.published_at,
			gr.created_at, gr.updated_at, s.name
		FROM grade_records gr
		LEFT JOIN subjects s ON s.id = gr.subject_id
		WHERE gr.school_id = $1 AND gr.student_id = $2 AND gr.is_published = true
			AND ($3 = '' OR gr.term_id::text = $3)
			AND ($4 = '' OR gr.academic_year_id::text = $4)
		ORDER BY gr.created_at
	`
	rows, err := db.Query(query, schoolID, studentID, termID, academicYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published grade records: %w", err)
	}
	defer rows.Close()

	var records []*models.GradeRecord
	for rows.Next() {
		var rec models.GradeRecord
		var subjectID, examScheduleID, assignmentID, gradeLetter, subjectName sql.NullString
		var marks sql.NullFloat64
		var publishedAt sql.NullTime

		err := rows.Scan(
			&rec.ID, &rec.SchoolID, &rec.StudentID, &subjectID, &rec.SectionID,
			&rec.TermID, &rec.AcademicYearID, &examScheduleID, &assignmentID,
			&marks, &gradeLetter, &rec.IsPublished, &publishedAt,
			&rec.CreatedAt, &rec.UpdatedAt, &subjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade record: %w", err)
		}

		if subjectID.Valid {
			rec.SubjectID = &subjectID.String
			rec.Subject = &models.Subject{ID: subjectID.String, SchoolID: rec.SchoolID}
			if subjectName.Valid {
				rec.Subject.Name = subjectName.String
			}
		}
		if examScheduleID.Valid {
			rec.ExamScheduleID = &examScheduleID.String
		}
		if assignmentID.Valid {
			rec.AssignmentID = &assignmentID.String
		}
		if marks.Valid {
			rec.MarksObtained = &marks.Float64
		}
		if gradeLetter.Valid {
			rec.GradeLetter = &gradeLetter.String
		}
		if publishedAt.Valid {
			rec.PublishedAt = &publishedAt.Time
		}
		records = append(records, &rec)
	}
	return records, nil
}
