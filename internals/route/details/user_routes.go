package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "officer_duty_backend/internals/features/notifications/notifications/route"
	userRoute "officer_duty_backend/internals/features/users/user/route"
)

// UserRoutes: roster officer + notifikasi milik principal.
func UserRoutes(protected fiber.Router, db *gorm.DB) {
	userRoute.OfficerRoutes(protected, db)
	notificationRoute.NotificationRoutes(protected, db)
}
