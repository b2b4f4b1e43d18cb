package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/attendance/records/controller"
	"officer_duty_backend/internals/helpers/authz"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	g := r.Group("/attendance")
	// officer
	g.Post("/checkin", authMiddleware.Allow(authz.ResAttendance, authz.ActClock), ctl.CheckIn)
	g.Post("/checkout", authMiddleware.Allow(authz.ResAttendance, authz.ActClock), ctl.CheckOut)
	g.Get("/me", authMiddleware.Allow(authz.ResAttendance, authz.ActReadOwn), ctl.ListMine)
	// admin
	g.Get("/export", authMiddleware.Allow(authz.ResAttendance, authz.ActExport), ctl.Export)
	g.Get("/", authMiddleware.Allow(authz.ResAttendance, authz.ActRead), ctl.List)
}
