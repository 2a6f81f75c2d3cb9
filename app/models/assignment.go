package models

import "time"

// Assignment is the classwork counterpart of an exam schedule as a grade source
type Assignment struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID  string     `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title     string     `json:"title" gorm:"not null" validate:"required"`
	SectionID string     `json:"section_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID string     `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TeacherID string     `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	MaxMarks  float64    `json:"max_marks" gorm:"not null;default:100;type:decimal(5,2)"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Section   *Section   `json:"section,omitempty" gorm:"foreignKey:SectionID;references:ID"`
	Subject   *Subject   `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}
