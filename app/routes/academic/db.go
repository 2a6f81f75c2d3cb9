package academic

import (
	"database/sql"
	"fmt"

	"sukuu-backend/app/models"
)

// GetAcademicYears fetches a school's academic years with their terms
// preloaded, newest first.
func GetAcademicYears(db *sql.DB, schoolID string) ([]*models.AcademicYear, error) {
	query := `
		SELECT id, school_id, name, start_date, end_date, is_current, is_active, created_at, updated_at
		FROM academic_years
		WHERE school_id = $1 AND deleted_at IS NULL
		ORDER BY start_date DESC
	`
	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch academic years: %w", err)
	}
	defer rows.Close()

	var years []*models.AcademicYear
	byID := map[string]*models.AcademicYear{}
	for rows.Next() {
		var year models.AcademicYear
		err := rows.Scan(
			&year.ID, &year.SchoolID, &year.Name, &year.StartDate, &year.EndDate,
			&year.IsCurrent, &year.IsActive, &year.CreatedAt, &year.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan academic year: %w", err)
		}
		years = append(years, &year)
		byID[year.ID] = &year
	}
	if len(years) == 0 {
		return years, nil
	}

	termQuery := `
		SELECT id, school_id, academic_year_id, name, start_date, end_date, is_current, is_active, created_at, updated_at
		FROM terms
		WHERE school_id = $1 AND deleted_at IS NULL
		ORDER BY start_date
	`
	termRows, err := db.Query(termQuery, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch terms: %w", err)
	}
	defer termRows.Close()

	for termRows.Next() {
		var term models.Term
		err := termRows.Scan(
			&term.ID, &term.SchoolID, &term.AcademicYearID, &term.Name, &term.StartDate,
			&term.EndDate, &term.IsCurrent, &term.IsActive, &term.CreatedAt, &term.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		if year, ok := byID[term.AcademicYearID]; ok {
			year.Terms = append(year.Terms, &term)
		}
	}
	return years, nil
}

// GetClasses fetches a school's classes with their sections preloaded
func GetClasses(db *sql.DB, schoolID string) ([]*models.Class, error) {
	query := `
		SELECT id, school_id, name, school_level, is_active, created_at, updated_at
		FROM classes
		WHERE school_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`
	rows, err := db.Query(query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	byID := map[string]*models.Class{}
	for rows.Next() {
		var class models.Class
		err := rows.Scan(
			&class.ID, &class.SchoolID, &class.Name, &class.SchoolLevel,
			&class.IsActive, &class.CreatedAt, &class.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, &class)
		byID[class.ID] = &class
	}
	if len(classes) == 0 {
		return classes, nil
	}

	sectionQuery := `
		SELECT id, school_id, class_id, name, class_teacher_id, is_active, created_at, updated_at
		FROM sections
		WHERE school_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`
	sectionRows, err := db.Query(sectionQuery, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sections: %w", err)
	}
	defer sectionRows.Close()

	for sectionRows.Next() {
		var section models.Section
		var classTeacherID sql.NullString
		err := sectionRows.Scan(
			&section.ID, &section.SchoolID, &section.ClassID, &section.Name,
			&classTeacherID, &section.IsActive, &section.CreatedAt, &section.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		if classTeacherID.Valid {
			section.ClassTeacherID = &classTeacherID.String
		}
		if class, ok := byID[section.ClassID]; ok {
			class.Sections = append(class.Sections, &section)
		}
	}
	return classes, nil
}
