package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"officer_duty_backend/internals/constants"
)

var (
	ErrInvalidRole          = errors.New("Role must be one of: admin, supervisor, officer")
	ErrSupervisorDepartment = errors.New("Supervisor must have a department assigned")
)

// UserModel adalah principal: admin, supervisor atau officer.
type UserModel struct {
	ID         uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	Username   string         `gorm:"size:50;not null;uniqueIndex:uq_users_username" json:"username"`
	Password   string         `gorm:"size:255;not null" json:"-"`
	Role       constants.Role `gorm:"type:varchar(20);not null;default:'officer';index" json:"role"`
	FullName   *string        `gorm:"size:100" json:"fullName"`
	Department *string        `gorm:"size:100;index" json:"department"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// DepartmentName: "" kalau tidak ada.
func (u *UserModel) DepartmentName() string {
	if u.Department == nil {
		return ""
	}
	return strings.TrimSpace(*u.Department)
}

// DisplayName: fullName kalau ada, selain itu username.
func (u *UserModel) DisplayName() string {
	if u.FullName != nil && strings.TrimSpace(*u.FullName) != "" {
		return strings.TrimSpace(*u.FullName)
	}
	return u.Username
}

// Validate memeriksa invariant principal sebelum disimpan.
func (u *UserModel) Validate() error {
	if u.Role == "" {
		u.Role = constants.RoleOfficer
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	if u.Role == constants.RoleSupervisor && u.DepartmentName() == "" {
		return ErrSupervisorDepartment
	}
	return nil
}
