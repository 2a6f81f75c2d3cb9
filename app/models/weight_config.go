package models

import "time"

// WeightConfig holds the assessment weight percentages and grading scale for a
// configuration scope. The weights are not required to sum to 100 here; score
// composition is handled elsewhere. Resolution precedence: subject+class beats
// class-only beats level-only beats the year-wide default.
type WeightConfig struct {
	ID              string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID        string        `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	AcademicYearID  string        `json:"academic_year_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SchoolLevel     *string       `json:"school_level,omitempty"`
	ClassID         *string       `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	SubjectID       *string       `json:"subject_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	ExamWeight      float64       `json:"exam_weight" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	ClassworkWeight float64       `json:"classwork_weight" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	AssignmentWeight float64      `json:"assignment_weight" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	GradingScaleID  *string       `json:"grading_scale_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsDefault       bool          `json:"is_default" gorm:"default:false"`
	CreatedAt       time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	GradingScale    *GradingScale `json:"grading_scale,omitempty" gorm:"foreignKey:GradingScaleID;references:ID"`
}
