package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "officer_duty_backend/internals/features/users/auth/dto"
	"officer_duty_backend/internals/features/users/auth/service"
	userDTO "officer_duty_backend/internals/features/users/user/dto"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Svc      *service.Service
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v, Svc: service.New(db)}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := ac.Svc.Register(c.UserContext(), &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "User registered", resp)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	resp, err := ac.Svc.Login(c.UserContext(), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login successful", resp)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	user, err := ac.Svc.Me(c.UserContext(), p.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", userDTO.FromModel(user))
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Svc.Logout(c.UserContext(), helper.GetRawAccessToken(c)); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ac.Svc.ChangePassword(c.UserContext(), p.ID, req); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
