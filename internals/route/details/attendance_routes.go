package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absenceRoute "officer_duty_backend/internals/features/attendance/absence_requests/route"
	clockRoute "officer_duty_backend/internals/features/attendance/clock_settings/route"
	attendanceRoute "officer_duty_backend/internals/features/attendance/records/route"
)

// AttendanceRoutes: check-in/out, absence request, clock settings.
func AttendanceRoutes(protected fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceRoutes(protected, db)
	absenceRoute.AbsenceRequestRoutes(protected, db)
	clockRoute.ClockSettingRoutes(protected, db)
}
