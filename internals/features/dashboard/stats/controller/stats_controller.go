package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/dashboard/stats/service"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
)

type StatsController struct {
	DB  *gorm.DB
	Svc *service.Service
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db, Svc: service.New(db)}
}

// GET /api/dashboard/stats
func (ctl *StatsController) Stats(c *fiber.Ctx) error {
	out, err := ctl.Svc.Stats(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/dashboard/stats/supervisor
func (ctl *StatsController) SupervisorStats(c *fiber.Ctx) error {
	p, err := authz.FromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.Svc.SupervisorStats(c.UserContext(), p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}
