package services

import "sukuu-backend/app/models"

// GradeAction is a mutation the grade write policy can permit.
type GradeAction string

const (
	GradeActionCreate    GradeAction = "create"
	GradeActionOverwrite GradeAction = "overwrite"
)

// WriteDecision is the outcome of applying the policy to one incoming pair.
type WriteDecision string

const (
	WriteCreate    WriteDecision = "create"
	WriteOverwrite WriteDecision = "overwrite"
	WriteSkip      WriteDecision = "skip"
)

// PermittedGradeActions returns the mutation set a role may perform on grade
// records. Teachers may create but never overwrite; only administrators may
// amend an existing record.
func PermittedGradeActions(role models.RoleName) map[GradeAction]bool {
	switch role {
	case models.RoleAdmin:
		return map[GradeAction]bool{GradeActionCreate: true, GradeActionOverwrite: true}
	case models.RoleTeacher:
		return map[GradeAction]bool{GradeActionCreate: true}
	}
	return map[GradeAction]bool{}
}

// DecideGradeWrite resolves what happens to one incoming (student, marks) pair
// given whether a record already exists. A missing record is created by anyone
// permitted to create; an existing record is overwritten only when the role is
// permitted to, otherwise the write is skipped and counted, never applied.
func DecideGradeWrite(role models.RoleName, exists bool) WriteDecision {
	actions := PermittedGradeActions(role)
	if !exists {
		if actions[GradeActionCreate] {
			return WriteCreate
		}
		return WriteSkip
	}
	if actions[GradeActionOverwrite] {
		return WriteOverwrite
	}
	return WriteSkip
}
