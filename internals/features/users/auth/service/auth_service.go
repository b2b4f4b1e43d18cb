package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authDTO "officer_duty_backend/internals/features/users/auth/dto"
	authHelper "officer_duty_backend/internals/features/users/auth/helper"
	authRepo "officer_duty_backend/internals/features/users/auth/repository"
	userDTO "officer_duty_backend/internals/features/users/user/dto"
	userModel "officer_duty_backend/internals/features/users/user/model"
	helper "officer_duty_backend/internals/helpers"
	helpersAuth "officer_duty_backend/internals/helpers/auth"
	"officer_duty_backend/internals/helpers/dbtime"
)

const (
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUserNotFound       = "User not found"
)

type Service struct {
	DB  *gorm.DB
	Now dbtime.Clock
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db, Now: dbtime.SystemClock}
}

/* ==========================
   REGISTER
========================== */

func (s *Service) Register(ctx context.Context, req *userDTO.CreateUserRequest) (*authDTO.AuthResponse, error) {
	req.Normalize()
	db := s.DB.WithContext(ctx)

	taken, err := authRepo.IsUsernameTaken(db, req.Username)
	if err != nil {
		return nil, helper.MapDBError(err, MsgUserExists)
	}
	if taken {
		return nil, fiber.NewError(fiber.StatusBadRequest, MsgUserExists)
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Password hashing failed")
	}
	user, err := req.ToModel(hash)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		return nil, helper.MapDBError(err, MsgUserExists)
	}

	log.Printf("[INFO] user registered: %s (%s)", user.Username, user.Role)
	return s.issue(user)
}

/* ==========================
   LOGIN
========================== */

func (s *Service) Login(ctx context.Context, req authDTO.LoginRequest) (*authDTO.AuthResponse, error) {
	req.Normalize()
	if err := authHelper.ValidateLoginInput(req.Username, req.Password); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByUsername(s.DB.WithContext(ctx), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidCredentials)
		}
		return nil, helper.MapDBError(err, "")
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.Password); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, MsgInvalidCredentials)
	}
	return s.issue(user)
}

func (s *Service) issue(user *userModel.UserModel) (*authDTO.AuthResponse, error) {
	token, err := helpersAuth.IssueAccessToken(user.ID, user.Username, user.Role, s.Now().UTC())
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}
	return &authDTO.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		Token:    token,
	}, nil
}

/* ==========================
   ME / LOGOUT / PASSWORD
========================== */

func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*userModel.UserModel, error) {
	user, err := authRepo.FindUserByID(s.DB.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, MsgUserNotFound)
		}
		return nil, helper.MapDBError(err, "")
	}
	return user, nil
}

// Logout memasukkan token ke blacklist sampai exp-nya.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "No token provided")
	}
	expiresAt := s.Now().UTC().Add(24 * time.Hour)
	if claims, err := helpersAuth.ParseAccessToken(rawToken); err == nil {
		if exp, err := helpersAuth.ExpiresAt(claims); err == nil {
			expiresAt = exp
		}
	}
	if err := authRepo.BlacklistToken(ctx, s.DB, rawToken, expiresAt); err != nil {
		return helper.MapDBError(err, "")
	}
	return nil
}

func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, req authDTO.ChangePasswordRequest) error {
	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if err := authHelper.CheckPasswordHash(user.Password, req.CurrentPassword); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Current password incorrect")
	}
	hash, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(s.DB.WithContext(ctx), userID, hash); err != nil {
		return helper.MapDBError(err, "")
	}
	return nil
}
