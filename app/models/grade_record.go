package models

import "time"

// GradeRecord stores one student's mark for one assessment of one subject.
// Exactly one of ExamScheduleID / AssignmentID is set. Unique per
// (student, assessment source, subject). Once created it is mutable only by
// an administrator.
type GradeRecord struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID       string     `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID      string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID      *string    `json:"subject_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	SectionID      string     `json:"section_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID         string     `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AcademicYearID string     `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ExamScheduleID *string    `json:"exam_schedule_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	AssignmentID   *string    `json:"assignment_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	MarksObtained  *float64   `json:"marks_obtained,omitempty" gorm:"type:decimal(5,2)" validate:"omitempty,gte=0"`
	GradeLetter    *string    `json:"grade_letter,omitempty"`
	IsPublished    bool       `json:"is_published" gorm:"default:false;index"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Student        *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Subject        *Subject   `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}
