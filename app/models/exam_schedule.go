package models

import "time"

// ExamSchedule represents a scheduled exam sitting for a section and subject
type ExamSchedule struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID       string        `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name           string        `json:"name" gorm:"not null" validate:"required"`
	SectionID      string        `json:"section_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID      string        `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID         *string       `json:"term_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	AcademicYearID *string       `json:"academic_year_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	MaxMarks       float64       `json:"max_marks" gorm:"not null;default:100;type:decimal(5,2)"`
	StartTime      time.Time     `json:"start_time" gorm:"not null" validate:"required"`
	EndTime        time.Time     `json:"end_time" gorm:"not null" validate:"required"`
	IsActive       bool          `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time    `json:"deleted_at,omitempty" gorm:"index"`
	Section        *Section      `json:"section,omitempty" gorm:"foreignKey:SectionID;references:ID"`
	Subject        *Subject      `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Term           *Term         `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
	AcademicYear   *AcademicYear `json:"academic_year,omitempty" gorm:"foreignKey:AcademicYearID;references:ID"`
}
