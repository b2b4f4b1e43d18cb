package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsRoute "officer_duty_backend/internals/features/dashboard/stats/route"
)

func DashboardRoutes(protected fiber.Router, db *gorm.DB) {
	statsRoute.DashboardRoutes(protected, db)
}
