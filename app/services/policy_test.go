package services

import (
	"testing"

	"sukuu-backend/app/models"
)

func TestPermittedGradeActions(t *testing.T) {
	admin := PermittedGradeActions(models.RoleAdmin)
	if !admin[GradeActionCreate] || !admin[GradeActionOverwrite] {
		t.Errorf("admin actions = %v, want create and overwrite", admin)
	}

	teacher := PermittedGradeActions(models.RoleTeacher)
	if !teacher[GradeActionCreate] {
		t.Errorf("teacher must be able to create, got %v", teacher)
	}
	if teacher[GradeActionOverwrite] {
		t.Errorf("teacher must not be able to overwrite, got %v", teacher)
	}

	if unknown := PermittedGradeActions(models.RoleName("bursar")); len(unknown) != 0 {
		t.Errorf("unknown role actions = %v, want none", unknown)
	}
}

func TestDecideGradeWrite(t *testing.T) {
	tests := []struct {
		name   string
		role   models.RoleName
		exists bool
		want   WriteDecision
	}{
		{name: "teacher creates missing record", role: models.RoleTeacher, exists: false, want: WriteCreate},
		{name: "teacher resubmission is skipped", role: models.RoleTeacher, exists: true, want: WriteSkip},
		{name: "admin creates missing record", role: models.RoleAdmin, exists: false, want: WriteCreate},
		{name: "admin overwrites existing record", role: models.RoleAdmin, exists: true, want: WriteOverwrite},
		{name: "unknown role is skipped", role: models.RoleName("bursar"), exists: false, want: WriteSkip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideGradeWrite(tt.role, tt.exists); got != tt.want {
				t.Errorf("DecideGradeWrite(%s, %v) = %s, want %s", tt.role, tt.exists, got, tt.want)
			}
		})
	}
}
