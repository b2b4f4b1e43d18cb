package authz

import (
	"testing"

	"github.com/google/uuid"

	"officer_duty_backend/internals/constants"
)

func TestCanAccess(t *testing.T) {
	admin := Principal{ID: uuid.New(), Role: constants.RoleAdmin}
	supA := Principal{ID: uuid.New(), Role: constants.RoleSupervisor, Department: "Dept A"}
	supNone := Principal{ID: uuid.New(), Role: constants.RoleSupervisor}
	officer := Principal{ID: uuid.New(), Role: constants.RoleOfficer, Department: "Dept A"}

	tests := []struct {
		name string
		p    Principal
		dept string
		want bool
	}{
		{"supervisor same department", supA, "Dept A", true},
		{"supervisor other department", supA, "Dept B", false},
		{"admin any department", admin, "Dept B", true},
		{"admin empty department", admin, "", true},
		{"supervisor without department", supNone, "", false},
		{"officer own department", officer, "Dept A", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.p, tt.dept); got != tt.want {
				t.Fatalf("CanAccess(%s@%q, %q) = %v, want %v", tt.p.Role, tt.p.Department, tt.dept, got, tt.want)
			}
		})
	}
}

func TestScopeFor(t *testing.T) {
	officerID := uuid.New()
	other := uuid.New()

	if s := ScopeFor(Principal{Role: constants.RoleAdmin}); s.Kind != ScopeAll || !s.Allows("x", other) {
		t.Fatalf("admin scope = %+v", s)
	}

	s := ScopeFor(Principal{Role: constants.RoleSupervisor, Department: "Dept A"})
	if s.Kind != ScopeDepartment || s.Department != "Dept A" {
		t.Fatalf("supervisor scope = %+v", s)
	}
	if !s.Allows("Dept A", other) || s.Allows("Dept B", other) {
		t.Fatalf("supervisor scope allows wrong departments")
	}

	s = ScopeFor(Principal{ID: officerID, Role: constants.RoleOfficer, Department: "Dept A"})
	if s.Kind != ScopeSelf {
		t.Fatalf("officer scope = %+v", s)
	}
	if !s.Allows("Dept B", officerID) || s.Allows("Dept A", other) {
		t.Fatalf("officer scope must match on principal id only")
	}

	if s := ScopeFor(Principal{Role: constants.RoleSupervisor}); s.Kind != ScopeNone || s.Allows("", uuid.Nil) {
		t.Fatalf("supervisor without department must see nothing, got %+v", s)
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		role constants.Role
		res  Resource
		act  Action
		want bool
	}{
		{constants.RoleOfficer, ResAttendance, ActClock, true},
		{constants.RoleAdmin, ResAttendance, ActClock, false},
		{constants.RoleAdmin, ResAttendance, ActRead, true},
		{constants.RoleSupervisor, ResAttendance, ActRead, false},
		{constants.RoleSupervisor, ResAbsenceRequests, ActReview, true},
		{constants.RoleOfficer, ResAbsenceRequests, ActReview, false},
		{constants.RoleSupervisor, ResClockSettings, ActCreate, false},
		{constants.RoleAdmin, ResDashboard, ActRead, true},
		{constants.RoleSupervisor, ResDashboard, ActRead, false},
		{constants.RoleSupervisor, ResDashboard, ActReadDepartment, true},
		{constants.Role("root"), ResOfficers, ActRead, false},
	}
	for _, tt := range tests {
		if got := Allowed(tt.role, tt.res, tt.act); got != tt.want {
			t.Errorf("Allowed(%s, %s, %s) = %v, want %v", tt.role, tt.res, tt.act, got, tt.want)
		}
	}
}
