package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"officer_duty_backend/internals/configs"
	"officer_duty_backend/internals/constants"
	"officer_duty_backend/internals/databases/dbtest"
	authDTO "officer_duty_backend/internals/features/users/auth/dto"
	authRepo "officer_duty_backend/internals/features/users/auth/repository"
	userDTO "officer_duty_backend/internals/features/users/user/dto"
	helpersAuth "officer_duty_backend/internals/helpers/auth"
)

func newService(t *testing.T) *Service {
	t.Helper()
	configs.JWTSecret = "test-secret"
	return New(dbtest.Open(t))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &userDTO.CreateUserRequest{Username: "  budi ", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Username != "budi" || resp.Role != constants.RoleOfficer || resp.Token == "" {
		t.Fatalf("register response = %+v", resp)
	}
	claims, err := helpersAuth.ParseAccessToken(resp.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if id, err := helpersAuth.UserID(claims); err != nil || id != resp.ID {
		t.Fatalf("token user id = %v, %v", id, err)
	}

	_, err = svc.Register(ctx, &userDTO.CreateUserRequest{Username: "budi", Password: "another1"})
	fe := dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)
	if fe.Message != MsgUserExists {
		t.Fatalf("message = %q", fe.Message)
	}

	_, err = svc.Register(ctx, &userDTO.CreateUserRequest{Username: "sup", Password: "secret123", Role: "supervisor"})
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)

	login, err := svc.Login(ctx, authDTO.LoginRequest{Username: "budi", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.ID != resp.ID {
		t.Fatalf("login id = %s, want %s", login.ID, resp.ID)
	}

	tests := []struct {
		name string
		req  authDTO.LoginRequest
		want int
	}{
		{"wrong password", authDTO.LoginRequest{Username: "budi", Password: "nope"}, fiber.StatusUnauthorized},
		{"unknown user", authDTO.LoginRequest{Username: "ghost", Password: "secret123"}, fiber.StatusUnauthorized},
		{"missing fields", authDTO.LoginRequest{}, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			dbtest.ExpectStatus(t, err, tt.want)
		})
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &userDTO.CreateUserRequest{Username: "sari", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Logout(ctx, resp.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	listed, err := authRepo.IsTokenBlacklisted(ctx, svc.DB, resp.Token)
	if err != nil || !listed {
		t.Fatalf("blacklisted = %v, %v", listed, err)
	}

	// sudah expired → ikut terhapus oleh cleanup
	n, err := authRepo.CleanupExpiredBlacklist(svc.DB, time.Now().AddDate(1, 0, 0))
	if err != nil || n != 1 {
		t.Fatalf("cleanup = %d, %v", n, err)
	}

	dbtest.ExpectStatus(t, svc.Logout(ctx, ""), fiber.StatusUnauthorized)
}

func TestChangePassword(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &userDTO.CreateUserRequest{Username: "andi", Password: "secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = svc.ChangePassword(ctx, resp.ID, authDTO.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newpass1"})
	dbtest.ExpectStatus(t, err, fiber.StatusBadRequest)

	if err := svc.ChangePassword(ctx, resp.ID, authDTO.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "newpass1"}); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.Login(ctx, authDTO.LoginRequest{Username: "andi", Password: "newpass1"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	_, err = svc.Login(ctx, authDTO.LoginRequest{Username: "andi", Password: "secret123"})
	dbtest.ExpectStatus(t, err, fiber.StatusUnauthorized)
}
