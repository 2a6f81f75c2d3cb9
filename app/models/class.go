package models

import "time"

// Class is an academic level (e.g., Primary 5) grouping one or more sections.
type Class struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID    string     `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name        string     `json:"name" gorm:"not null" validate:"required"`
	SchoolLevel string     `json:"school_level" gorm:"not null" validate:"required"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Sections    []*Section `json:"sections,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
