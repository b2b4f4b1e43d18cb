package dto

import (
	"strings"

	"github.com/google/uuid"

	"officer_duty_backend/internals/constants"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

// AuthResponse: body sukses register & login.
type AuthResponse struct {
	ID       uuid.UUID      `json:"id"`
	Username string         `json:"username"`
	Role     constants.Role `json:"role"`
	Token    string         `json:"token"`
}
