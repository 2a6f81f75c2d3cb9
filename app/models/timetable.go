package models

import (
	"time"
)

// TimetableEntry represents a single lesson slot pairing a teacher with a
// section and subject. The grade write policy uses it as one of the links
// authorising a teacher to submit marks.
type TimetableEntry struct {
	ID        string    `json:"id" db:"id"`
	SchoolID  string    `json:"school_id" db:"school_id"`
	SectionID string    `json:"section_id" db:"section_id"`
	SubjectID string    `json:"subject_id" db:"subject_id"`
	TeacherID string    `json:"teacher_id" db:"teacher_id"`
	Day       DayOfWeek `json:"day" db:"day"`
	TimeSlot  string    `json:"time_slot" db:"time_slot"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
