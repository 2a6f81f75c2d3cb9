package models

// RoleName defines the roles recognised by the grade write policy.
type RoleName string

const (
	RoleAdmin   RoleName = "admin"
	RoleTeacher RoleName = "teacher"
)

// PrimaryRole reduces a user's role names to the single role the grade write
// policy branches on. Admin wins over teacher.
func PrimaryRole(names []string) RoleName {
	for _, n := range names {
		if RoleName(n) == RoleAdmin {
			return RoleAdmin
		}
	}
	return RoleTeacher
}

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// DayOfWeek defines the days of the week for schedules.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)
