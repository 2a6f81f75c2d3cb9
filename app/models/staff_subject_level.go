package models

// StaffSubjectLevel links a teacher to a subject, optionally restricted to one
// class level. A null class_id means the link covers every class.
type StaffSubjectLevel struct {
	ID        string   `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SchoolID  string   `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TeacherID string   `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID string   `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID   *string  `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Teacher   *User    `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	Subject   *Subject `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}
