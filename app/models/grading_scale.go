package models

import "time"

// GradingScale is an ordered set of bands mapping percentage ranges to letters.
type GradingScale struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID  string       `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string       `json:"name" gorm:"not null" validate:"required"`
	IsActive  bool         `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty" gorm:"index"`
	Bands     []*GradeBand `json:"bands,omitempty" gorm:"foreignKey:GradingScaleID;references:ID"`
}

// GradeBand is one entry of a grading scale. Bands are interpreted by
// descending min_percentage; a missing max_percentage means 100.
type GradeBand struct {
	ID             string   `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	GradingScaleID string   `json:"grading_scale_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Grade          string   `json:"grade" gorm:"not null" validate:"required"`
	MinPercentage  float64  `json:"min_percentage" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	MaxPercentage  *float64 `json:"max_percentage,omitempty" gorm:"type:decimal(5,2)" validate:"omitempty,gte=0,lte=100"`
}
