package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/attendance/records/dto"
	"officer_duty_backend/internals/features/attendance/records/service"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AttendanceController struct {
	DB  *gorm.DB
	Svc *service.Service
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Svc: service.New(db)}
}

// POST /api/attendance/checkin
func (ctl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rec, err := ctl.Svc.CheckIn(c.UserContext(), p.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Checked in successfully", dto.FromModel(rec))
}

// POST /api/attendance/checkout
func (ctl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rec, err := ctl.Svc.CheckOut(c.UserContext(), p.ID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Checked out successfully", dto.FromModel(rec))
}

// GET /api/attendance/me?startDate&endDate
func (ctl *AttendanceController) ListMine(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	f, err := dto.ParseFilter(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctl.Svc.ListMine(c.UserContext(), p.ID, f)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

// GET /api/attendance?startDate&endDate&officerId&status&page&per_page
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	f, err := dto.ParseFilter(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 50, 500)
	rows, total, err := ctl.Svc.List(c.UserContext(), f, paging)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	pg := helper.BuildPagination(total, paging, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// GET /api/attendance/export (XLSX)
func (ctl *AttendanceController) Export(c *fiber.Ctx) error {
	f, err := dto.ParseFilter(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctl.Svc.ListForExport(c.UserContext(), f)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	buf, err := service.BuildExportWorkbook(rows)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, service.ExportFilename(f.StartDate, f.EndDate)))
	return c.Send(buf.Bytes())
}
