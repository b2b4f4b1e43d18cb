package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"officer_duty_backend/internals/constants"
	uModel "officer_duty_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest: dipakai register & create officer
type CreateUserRequest struct {
	Username   string  `json:"username" validate:"required,min=3,max=50"`
	Password   string  `json:"password" validate:"required,min=6,max=72"`
	Role       string  `json:"role" validate:"omitempty,oneof=admin supervisor officer"`
	FullName   *string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
}

// Normalize: trim & normalisasi dasar
func (r *CreateUserRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.FullName = trimPtr(r.FullName)
	r.Department = trimPtr(r.Department)
}

// ToModel: password harus sudah di-hash oleh pemanggil
func (r *CreateUserRequest) ToModel(passwordHash string) (*uModel.UserModel, error) {
	role, err := constants.ParseRole(r.Role)
	if err != nil {
		return nil, uModel.ErrInvalidRole
	}
	m := &uModel.UserModel{
		Username:   r.Username,
		Password:   passwordHash,
		Role:       role,
		FullName:   r.FullName,
		Department: r.Department,
	}
	return m, m.Validate()
}

// UpdateUserRequest: partial update (pointer: bedakan omit vs kosong)
type UpdateUserRequest struct {
	FullName   *string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

func (r *UpdateUserRequest) Normalize() {
	r.FullName = trimPtr(r.FullName)
	r.Department = trimPtr(r.Department)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse: profil principal tanpa password hash
type UserResponse struct {
	ID         uuid.UUID      `json:"id"`
	Username   string         `json:"username"`
	Role       constants.Role `json:"role"`
	FullName   *string        `json:"fullName"`
	Department *string        `json:"department"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func FromModel(m *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:         m.ID,
		Username:   m.Username,
		Role:       m.Role,
		FullName:   m.FullName,
		Department: m.Department,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func FromModels(list []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

// UserSummary: embed ringkas di response entity lain (assignment, attendance, dst)
type UserSummary struct {
	ID         uuid.UUID      `json:"id"`
	Username   string         `json:"username"`
	FullName   *string        `json:"fullName"`
	Department *string        `json:"department"`
	Role       constants.Role `json:"role"`
}

// Summary: nil kalau relasi tidak di-preload.
func Summary(m *uModel.UserModel) *UserSummary {
	if m == nil || m.ID == uuid.Nil {
		return nil
	}
	return &UserSummary{
		ID:         m.ID,
		Username:   m.Username,
		FullName:   m.FullName,
		Department: m.Department,
		Role:       m.Role,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
