// Package authz memusatkan aturan akses: scope departemen per principal dan
// tabel policy (role, resource, action).
package authz

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"officer_duty_backend/internals/constants"
)

const LocalsPrincipal = "principal"

// Principal adalah identitas yang sudah terautentikasi untuk satu request.
type Principal struct {
	ID         uuid.UUID
	Username   string
	Role       constants.Role
	Department string
}

func (p Principal) HasDepartment() bool {
	return strings.TrimSpace(p.Department) != ""
}

type ScopeKind int

const (
	// ScopeNone: tidak melihat apa pun (supervisor tanpa departemen).
	ScopeNone ScopeKind = iota
	ScopeSelf
	ScopeDepartment
	ScopeAll
)

type Scope struct {
	Kind        ScopeKind
	Department  string
	PrincipalID uuid.UUID
}

func ScopeFor(p Principal) Scope {
	switch p.Role {
	case constants.RoleAdmin:
		return Scope{Kind: ScopeAll}
	case constants.RoleSupervisor:
		if !p.HasDepartment() {
			return Scope{Kind: ScopeNone}
		}
		return Scope{Kind: ScopeDepartment, Department: p.Department}
	case constants.RoleOfficer:
		return Scope{Kind: ScopeSelf, PrincipalID: p.ID}
	}
	return Scope{Kind: ScopeNone}
}

// CanAccess: gate lintas departemen. Officer selalu false; data officer
// difilter lewat principal id oleh pemanggil.
func CanAccess(p Principal, department string) bool {
	switch p.Role {
	case constants.RoleAdmin:
		return true
	case constants.RoleSupervisor:
		return p.HasDepartment() && p.Department == department
	}
	return false
}

// Allows menggabungkan scope departemen dan kepemilikan untuk satu resource.
func (s Scope) Allows(department string, ownerID uuid.UUID) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeDepartment:
		return s.Department == department
	case ScopeSelf:
		return ownerID != uuid.Nil && ownerID == s.PrincipalID
	}
	return false
}

// FromCtx mengambil principal yang diset AuthMiddleware.
func FromCtx(c *fiber.Ctx) (Principal, error) {
	p, ok := c.Locals(LocalsPrincipal).(Principal)
	if !ok || p.ID == uuid.Nil {
		return Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Not authorized to access this route")
	}
	return p, nil
}
