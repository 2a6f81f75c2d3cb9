package rankings

import (
	"database/sql"
	"fmt"
	"time"

	"sukuu-backend/app/models"
	"sukuu-backend/app/services"
)

// GetCohortGradeRecords fetches every grade record of one cohort regardless of
// publish state; ranking is computed over submitted data, publishing is a
// separate gate.
func GetCohortGradeRecords(db *sql.DB, cohort Cohort) ([]*models.GradeRecord, error) {
	query := `
		SELECT id, school_id, student_id, subject_id, section_id, term_id, academic_year_id,
			exam_schedule_id, assignment_id, marks_obtained, grade_letter,
			is_published, published_at, created_at, updated_at
		FROM grade_records
		WHERE school_id = $1 AND section_id = $2 AND term_id = $3 AND academic_year_id = $4
	`
	rows, err := db.Query(query, cohort.SchoolID, cohort.SectionID, cohort.TermID, cohort.AcademicYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cohort grade records: %w", err)
	}
	defer rows.Close()

	return scanGradeRecords(rows)
}

func scanGradeRecords(rows *sql.Rows) ([]*models.GradeRecord, error) {
	var records []*models.GradeRecord
	for rows.Next() {
		var rec models.GradeRecord
		var subjectID, examScheduleID, assignmentID, gradeLetter sql.NullString
		var marks sql.NullFloat64
		var publishedAt sql.NullTime

		err := rows.Scan(
			&rec.ID, &rec.SchoolID, &rec.StudentID, &subjectID, &rec.SectionID,
			&rec.TermID, &rec.AcademicYearID, &examScheduleID, &assignmentID,
			&marks, &gradeLetter, &rec.IsPublished, &publishedAt,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade record: %w", err)
		}

		if subjectID.Valid {
			rec.SubjectID = &subjectID.String
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

// sqlSnapshotStore implements SnapshotStore over one postgres transaction.
type sqlSnapshotStore struct {
	db *sql.DB
}

type sqlSnapshotTx struct {
	tx *sql.Tx
}

func (s *sqlSnapshotStore) InTransaction(fn func(tx SnapshotTx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&sqlSnapshotTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (t *sqlSnapshotTx) GetSnapshot(sectionID, termID, studentID string) (*models.RankingSnapshot, error) {
	snap := &models.RankingSnapshot{}
	query := `
		SELECT id, school_id, section_id, term_id, academic_year_id, student_id,
			total_score, average, total_subjects, position, computed_at, published
		FROM ranking_snapshots
		WHERE section_id = $1 AND term_id = $2 AND student_id = $3
	`
	err := t.tx.QueryRow(query, sectionID, termID, studentID).Scan(
		&snap.ID, &snap.SchoolID, &snap.SectionID, &snap.TermID, &snap.AcademicYearID,
		&snap.StudentID, &snap.TotalScore, &snap.Average, &snap.TotalSubjects,
		&snap.Position, &snap.ComputedAt, &snap.Published,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (t *sqlSnapshotTx) PutSnapshot(snap *models.RankingSnapshot) error {
	query := `
		INSERT INTO ranking_snapshots (
			id, school_id, section_id, term_id, academic_year_id, student_id,
			total_score, average, total_subjects, position, computed_at, published
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (section_id, term_id, student_id) DO UPDATE SET
			total_score = EXCLUDED.total_score,
			average = EXCLUDED.average,
			total_subjects = EXCLUDED.total_subjects,
			position = EXCLUDED.position,
			computed_at = EXCLUDED.computed_at,
			published = EXCLUDED.published
	`
	_, err := t.tx.Exec(query,
		snap.ID, snap.SchoolID, snap.SectionID, snap.TermID, snap.AcademicYearID,
		snap.StudentID, snap.TotalScore, snap.Average, snap.TotalSubjects,
		snap.Position, snap.ComputedAt, snap.Published,
	)
	return err
}

// GetSnapshotsByCohort fetches a cohort's stored snapshot rows ordered by position
func GetSnapshotsByCohort(db *sql.DB, schoolID, sectionID, termID string) ([]*models.RankingSnapshot, error) {
	query := `
		SELECT id, school_id, section_id, term_id, academic_year_id, student_id,
			total_score, average, total_subjects, position, computed_at, published
		FROM ranking_snapshots
		WHERE school_id = $1 AND section_id = $2 AND term_id = $3
		ORDER BY position, student_id
	`
	rows, err := db.Query(query, schoolID, sectionID, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ranking snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.RankingSnapshot
	for rows.Next() {
		var snap models.RankingSnapshot
		err := rows.Scan(
			&snap.ID, &snap.SchoolID, &snap.SectionID, &snap.TermID, &snap.AcademicYearID,
			&snap.StudentID, &snap.TotalScore, &snap.Average, &snap.TotalSubjects,
			&snap.Position, &snap.ComputedAt, &snap.Published,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ranking snapshot: %w", err)
		}
		snapshots = append(snapshots, &snap)
	}
	return snapshots, nil
}

// GetSectionStudents fetches a section's active students for display alongside
// standings
func GetSectionStudents(db *sql.DB, schoolID, sectionID string) ([]*models.Student, error) {
	query := `
		SELECT id, school_id, student_id, first_name, last_name, gender, section_id, is_active
		FROM students
		WHERE school_id = $1 AND section_id = $2 AND is_active = true AND deleted_at IS NULL
		ORDER BY first_name, last_name
	`
	rows, err := db.Query(query, schoolID, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch section students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var st models.Student
		var gender, studentSectionID sql.NullString
		err := rows.Scan(
			&st.ID, &st.SchoolID, &st.StudentID, &st.FirstName, &st.LastName,
			&gender, &studentSectionID, &st.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		if gender.Valid {
			g := models.Gender(gender.String)
			st.Gender = &g
		}
		if studentSectionID.Valid {
			st.SectionID = &studentSectionID.String
		}
		students = append(students, &st)
	}
	return students, nil
}

// RecomputeCohort loads a cohort's grade records, ranks them and upserts the
// snapshot rows in one transaction. Two concurrent recomputes of the same
// cohort race last-write-wins; there is no inter-request locking.
func RecomputeCohort(db *sql.DB, cohort Cohort, publish bool) (int, error) {
	records, err := GetCohortGradeRecords(db, cohort)
	if err != nil {
		return 0, err
	}

	standings := services.ComputeSectionRanking(records)
	return PublishSnapshots(&sqlSnapshotStore{db: db}, cohort, standings, publish, time.Now())
}
