package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS schools (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			role_id UUID NOT NULL REFERENCES roles(id),
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS academic_years (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			name TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN DEFAULT FALSE,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS terms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			name TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN DEFAULT FALSE,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			name TEXT NOT NULL,
			school_level TEXT NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			class_id UUID NOT NULL REFERENCES classes(id),
			name TEXT NOT NULL,
			class_teacher_id UUID REFERENCES users(id),
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			name TEXT NOT NULL,
			code TEXT NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			student_id TEXT UNIQUE NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			date_of_birth DATE,
			gender VARCHAR(10),
			address TEXT,
			section_id UUID REFERENCES sections(id),
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS timetable_entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			section_id UUID NOT NULL REFERENCES sections(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			teacher_id UUID NOT NULL REFERENCES users(id),
			day VARCHAR(10) NOT NULL,
			time_slot TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS staff_subject_levels (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			teacher_id UUID NOT NULL REFERENCES users(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			class_id UUID REFERENCES classes(id)
		)`,
		`CREATE TABLE IF NOT EXISTS exam_schedules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			name TEXT NOT NULL,
			section_id UUID NOT NULL REFERENCES sections(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			term_id UUID REFERENCES terms(id),
			academic_year_id UUID REFERENCES academic_years(id),
			max_marks DECIMAL(5,2) NOT NULL DEFAULT 100,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			title TEXT NOT NULL,
			section_id UUID NOT NULL REFERENCES sections(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			teacher_id UUID NOT NULL REFERENCES users(id),
			max_marks DECIMAL(5,2) NOT NULL DEFAULT 100,
			due_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS grading_scales (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			name TEXT NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS grade_bands (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			grading_scale_id UUID NOT NULL REFERENCES grading_scales(id),
			grade TEXT NOT NULL,
			min_percentage DECIMAL(5,2) NOT NULL,
			max_percentage DECIMAL(5,2)
		)`,
		`CREATE TABLE IF NOT EXISTS weight_configs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			school_level TEXT,
			class_id UUID REFERENCES classes(id),
			subject_id UUID REFERENCES subjects(id),
			exam_weight DECIMAL(5,2) NOT NULL,
			classwork_weight DECIMAL(5,2) NOT NULL,
			assignment_weight DECIMAL(5,2) NOT NULL,
			grading_scale_id UUID REFERENCES grading_scales(id),
			is_default BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS grade_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			school_id UUID NOT NULL REFERENCES schools(id),
			student_id UUID NOT NULL REFERENCES students(id),
			subject_id UUID REFERENCES subjects(id),
			section_id UUID NOT NULL REFERENCES sections(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			exam_schedule_id UUID REFERENCES exam_schedules(id),
			assignment_id UUID REFERENCES assignments(id),
			marks_obtained DECIMAL(5,2),
			grade_letter TEXT,
			is_published BOOLEAN DEFAULT FALSE,
			published_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			CHECK (num_nonnulls(exam_schedule_id, assignment_id) = 1)
		)`,
		`CREATE TABLE IF NOT EXISTS ranking_snapshots (
			id UUID PRIMARY KEY,
			school_id UUID NOT NULL REFERENCES schools(id),
			section_id UUID NOT NULL REFERENCES sections(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			student_id UUID NOT NULL REFERENCES students(id),
			total_score DECIMAL(8,2) NOT NULL,
			average DECIMAL(5,2) NOT NULL,
			total_subjects INTEGER NOT NULL,
			position INTEGER NOT NULL,
			computed_at TIMESTAMPTZ NOT NULL,
			published BOOLEAN DEFAULT FALSE
		)`,
		// concurrent submissions rely on this constraint surfacing a conflict
		// rather than silently double-creating
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_grade_records_exam_unique
			ON grade_records (student_id, exam_schedule_id, subject_id)
			WHERE exam_schedule_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_grade_records_assignment_unique
			ON grade_records (student_id, assignment_id, subject_id)
			WHERE assignment_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_ranking_snapshots_cohort_unique
			ON ranking_snapshots (section_id, term_id, student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_grade_records_cohort
			ON grade_records (school_id, section_id, term_id, academic_year_id)`,
		`CREATE INDEX IF NOT EXISTS idx_grade_records_student_published
			ON grade_records (school_id, student_id, is_published)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
