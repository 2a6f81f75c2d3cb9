package database

import (
	"database/sql"
	"fmt"

	"sukuu-backend/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, school_id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.SchoolID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetSchoolByID fetches one school row
func GetSchoolByID(db *sql.DB, schoolID string) (*models.School, error) {
	school := &models.School{}
	query := `SELECT id, name, is_active, created_at, updated_at FROM schools WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, schoolID).Scan(
		&school.ID, &school.Name, &school.IsActive, &school.CreatedAt, &school.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return school, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, nil
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// GetSectionByID fetches one section with its class id and class-teacher link
func GetSectionByID(db *sql.DB, schoolID, sectionID string) (*models.Section, error) {
	section := &models.Section{}
	var classTeacherID sql.NullString

	query := `
		SELECT id, school_id, class_id, name, class_teacher_id, is_active, created_at, updated_at
		FROM sections
		WHERE id = $1 AND school_id = $2 AND deleted_at IS NULL
	`
	err := db.QueryRow(query, sectionID, schoolID).Scan(
		&section.ID, &section.SchoolID, &section.ClassID, &section.Name,
		&classTeacherID, &section.IsActive, &section.CreatedAt, &section.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if classTeacherID.Valid {
		section.ClassTeacherID = &classTeacherID.String
	}
	return section, nil
}

// GetWeightConfigs fetches all weight configs of one academic year with their
// grading scales and bands preloaded, ready for scope matching.
func GetWeightConfigs(db *sql.DB, schoolID, academicYearID string) ([]*models.WeightConfig, error) {
	query := `
		SELECT id, school_id, academic_year_id, school_level, class_id, subject_id,
			exam_weight, classwork_weight, assignment_weight, grading_scale_id, is_default
		FROM weight_configs
		WHERE school_id = $1 AND academic_year_id = $2
	`
	rows, err := db.Query(query, schoolID, academicYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weight configs: %w", err)
	}
	defer rows.Close()

	var configs []*models.WeightConfig
	scaleIDs := map[string]bool{}

	for rows.Next() {
		var cfg models.WeightConfig
		var schoolLevel, classID, subjectID, scaleID sql.NullString

		err := rows.Scan(
			&cfg.ID, &cfg.SchoolID, &cfg.AcademicYearID, &schoolLevel, &classID, &subjectID,
			&cfg.ExamWeight, &cfg.ClassworkWeight, &cfg.AssignmentWeight, &scaleID, &cfg.IsDefault,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weight config: %w", err)
		}

		if schoolLevel.Valid {
			cfg.SchoolLevel = &schoolLevel.String
		}
		if classID.Valid {
			cfg.ClassID = &classID.String
		}
		if subjectID.Valid {
			cfg.SubjectID = &subjectID.String
		}
		if scaleID.Valid {
			cfg.GradingScaleID = &scaleID.String
			scaleIDs[scaleID.String] = true
		}
		configs = append(configs, &cfg)
	}

	if len(scaleIDs) == 0 {
		return configs, nil
	}

	scales := map[string]*models.GradingScale{}
	for id := range scaleIDs {
		scale, err := GetGradingScale(db, id)
		if err != nil {
			return nil, err
		}
		scales[id] = scale
	}
	for _, cfg := range configs {
		if cfg.GradingScaleID != nil {
			cfg.GradingScale = scales[*cfg.GradingScaleID]
		}
	}
	return configs, nil
}

// GetGradingScale fetches one scale with its bands
func GetGradingScale(db *sql.DB, scaleID string) (*models.GradingScale, error) {
	scale := &models.GradingScale{}
	query := `SELECT id, school_id, name, is_active FROM grading_scales WHERE id = $1`
	err := db.QueryRow(query, scaleID).Scan(&scale.ID, &scale.SchoolID, &scale.Name, &scale.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grading scale: %w", err)
	}

	bandQuery := `
		SELECT id, grading_scale_id, grade, min_percentage, max_percentage
		FROM grade_bands
		WHERE grading_scale_id = $1
		ORDER BY min_percentage DESC
	`
	rows, err := db.Query(bandQuery, scaleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade bands: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var band models.GradeBand
		var max sql.NullFloat64
		if err := rows.Scan(&band.ID, &band.GradingScaleID, &band.Grade, &band.MinPercentage, &max); err != nil {
			return nil, fmt.Errorf("failed to scan grade band: %w", err)
		}
		if max.Valid {
			band.MaxPercentage = &max.Float64
		}
		scale.Bands = append(scale.Bands, &band)
	}
	return scale, nil
}
