package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"officer_duty_backend/internals/features/dashboard/stats/controller"
	"officer_duty_backend/internals/helpers/authz"
	authMiddleware "officer_duty_backend/internals/middlewares/auth"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStatsController(db)

	g := r.Group("/dashboard")
	g.Get("/stats", authMiddleware.Allow(authz.ResDashboard, authz.ActRead), ctl.Stats)
	g.Get("/stats/supervisor", authMiddleware.Allow(authz.ResDashboard, authz.ActReadDepartment), ctl.SupervisorStats)
}
