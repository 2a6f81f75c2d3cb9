package models

import "time"

// RankingSnapshot is a persisted point-in-time ranking result for one student
// in one (section, term) cohort of an academic year. Unique per
// (section_id, term_id, student_id). Published is monotonic: recomputation may
// set it to true but never back to false.
type RankingSnapshot struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	SchoolID       string    `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SectionID      string    `json:"section_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID         string    `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AcademicYearID string    `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID      string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TotalScore     float64   `json:"total_score" gorm:"not null;type:decimal(8,2)"`
	Average        float64   `json:"average" gorm:"not null;type:decimal(5,2)"`
	TotalSubjects  int       `json:"total_subjects" gorm:"not null"`
	Position       int       `json:"position" gorm:"not null"`
	ComputedAt     time.Time `json:"computed_at" gorm:"not null"`
	Published      bool      `json:"published" gorm:"default:false;index"`
}
