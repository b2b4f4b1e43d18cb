package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/duty/assignments/dto"
	"officer_duty_backend/internals/features/duty/assignments/service"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

type DutyAssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Svc      *service.Service
}

func NewDutyAssignmentController(db *gorm.DB, v *validator.Validate) *DutyAssignmentController {
	return &DutyAssignmentController{DB: db, Validate: v, Svc: service.New(db)}
}

// GET /api/duty-assignments?userId=
func (ctl *DutyAssignmentController) List(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.ParseUUIDQuery(c, "userId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctl.Svc.List(c.UserContext(), p, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

// GET /api/duty-assignments/me
func (ctl *DutyAssignmentController) ListMine(c *fiber.Ctx) error {
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

// GET /api/duty-assignments/:id
func (ctl *DutyAssignmentController) Get(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctl.Svc.Get(c.UserContext(), p, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// POST /api/duty-assignments
func (ctl *DutyAssignmentController) Create(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CreateDutyAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Create(c.UserContext(), p, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Duty assignment created", dto.FromModel(m))
}

// PUT /api/duty-assignments/:id
func (ctl *DutyAssignmentController) Update(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateDutyAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m, err := ctl.Svc.Update(c.UserContext(), p, id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Duty assignment updated", dto.FromModel(m))
}

// DELETE /api/duty-assignments/:id
func (ctl *DutyAssignmentController) Delete(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.Svc.Delete(c.UserContext(), p, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Duty assignment deleted", fiber.Map{"id": id})
}
