package dbtest

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/constants"
	userModel "officer_duty_backend/internals/features/users/user/model"
)

// User menyimpan principal dengan password placeholder (bukan hash bcrypt).
func User(t *testing.T, db *gorm.DB, username string, role constants.Role, department string) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		Username: username,
		Password: "not-a-real-hash",
		Role:     role,
	}
	if department != "" {
		d := department
		u.Department = &d
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// ExpectStatus gagal kalau err bukan *fiber.Error dengan kode want.
func ExpectStatus(t *testing.T, err error, want int) *fiber.Error {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fiber.Error %d, got %v", want, err)
	}
	if fe.Code != want {
		t.Fatalf("expected status %d, got %d (%s)", want, fe.Code, fe.Message)
	}
	return fe
}
