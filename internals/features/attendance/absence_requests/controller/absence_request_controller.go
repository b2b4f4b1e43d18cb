package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/attendance/absence_requests/dto"
	"officer_duty_backend/internals/features/attendance/absence_requests/model"
	"officer_duty_backend/internals/features/attendance/absence_requests/service"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

type AbsenceRequestController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Svc      *service.Service
}

func NewAbsenceRequestController(db *gorm.DB, v *validator.Validate) *AbsenceRequestController {
	return &AbsenceRequestController{DB: db, Validate: v, Svc: service.New(db)}
}

// POST /api/absence-requests
func (ctl *AbsenceRequestController) Create(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CreateAbsenceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Create(c.UserContext(), p.ID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Absence request submitted", dto.FromModel(m))
}

// GET /api/absence-requests/me
func (ctl *AbsenceRequestController) ListMine(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctl.Svc.ListMine(c.UserContext(), p.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

// GET /api/absence-requests?status=
func (ctl *AbsenceRequestController) List(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var status *model.AbsenceStatus
	if raw := strings.ToLower(strings.TrimSpace(c.Query("status"))); raw != "" {
		if err := ctl.Validate.Var(raw, "oneof=pending approved rejected"); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "status must be one of: pending, approved, rejected")
		}
		st := model.AbsenceStatus(raw)
		status = &st
	}
	rows, err := ctl.Svc.List(c.UserContext(), p, status)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

// PUT /api/absence-requests/:id/status
func (ctl *AbsenceRequestController) UpdateStatus(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.UpdateStatus(c.UserContext(), p, id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Absence request "+string(m.Status), dto.FromModel(m))
}
