package models

import "time"

// Section is one stream of a class (e.g., P5 Blue); rankings are scoped to a
// (section, term, academic year) cohort.
type Section struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID       string     `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID        string     `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name           string     `json:"name" gorm:"not null" validate:"required"`
	ClassTeacherID *string    `json:"class_teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	StudentCount   int        `json:"student_count" gorm:"-"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Class          *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	ClassTeacher   *User      `json:"class_teacher,omitempty" gorm:"foreignKey:ClassTeacherID;references:ID"`
	Students       []*Student `json:"students,omitempty" gorm:"foreignKey:SectionID;references:ID"`
}
