package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/attendance/clock_settings/dto"
	"officer_duty_backend/internals/features/attendance/clock_settings/service"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
	"officer_duty_backend/internals/helpers/clockwindow"
)

type ClockSettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Svc      *service.Service
}

func NewClockSettingController(db *gorm.DB, v *validator.Validate) *ClockSettingController {
	return &ClockSettingController{DB: db, Validate: v, Svc: service.New(db)}
}

// GET /api/clock-settings
func (ctl *ClockSettingController) Get(c *fiber.Ctx) error {
	m, err := ctl.Svc.Current(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if m == nil {
		return helper.JsonOK(c, clockwindow.MsgNotConfigured, nil)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// GET /api/clock-settings/availability
func (ctl *ClockSettingController) Availability(c *fiber.Ctx) error {
	resp, err := ctl.Svc.Availability(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, resp.Message, resp)
}

// GET /api/clock-settings/history
func (ctl *ClockSettingController) History(c *fiber.Ctx) error {
	rows, err := ctl.Svc.History(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", dto.ToHistory(rows), nil)
}

// POST /api/clock-settings
func (ctl *ClockSettingController) Create(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CreateClockSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Create(c.UserContext(), p.ID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Clock settings created", dto.FromModel(m))
}

// PUT /api/clock-settings
func (ctl *ClockSettingController) Update(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateClockSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Update(c.UserContext(), p.ID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Clock settings updated", dto.FromModel(m))
}
