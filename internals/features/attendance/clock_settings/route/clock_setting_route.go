package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/attendance/clock_settings/controller"
	helper "officer_duty_backend/internals/helpers"
	"officer_duty_backend/internals/helpers/authz"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
)

func ClockSettingRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClockSettingController(db, helper.NewValidator())

	g := r.Group("/clock-settings")
	g.Get("/", authMiddleware.Allow(authz.ResClockSettings, authz.ActRead), ctl.Get)
	g.Get("/availability", authMiddleware.Allow(authz.ResClockSettings, authz.ActRead), ctl.Availability)
	g.Get("/history", authMiddleware.Allow(authz.ResClockSettings, authz.ActReadHistory), ctl.History)
	g.Post("/", authMiddleware.Allow(authz.ResClockSettings, authz.ActCreate), ctl.Create)
	g.Put("/", authMiddleware.Allow(authz.ResClockSettings, authz.ActUpdate), ctl.Update)
}
