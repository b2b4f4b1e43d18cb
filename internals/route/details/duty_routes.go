package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dutyRoute "officer_duty_backend/internals/features/duty/assignments/route"
)

func DutyRoutes(protected fiber.Router, db *gorm.DB) {
	dutyRoute.DutyAssignmentRoutes(protected, db)
}
