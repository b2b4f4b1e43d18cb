package constants

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleOfficer    Role = "officer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleOfficer:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole: case-insensitive, kosong → officer.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RoleOfficer, nil
	}
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q (admin, supervisor, officer)", s)
	}
	return r, nil
}

// Pesan 403 dari middleware Allow.
const ErrRoleNotAuthorized = "User role is not authorized"
